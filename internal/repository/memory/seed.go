package memory

import (
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed loads the fixed sample records the platform ships with: three
// jobs, three courses, three competitions and three part-time jobs, all
// posted by "system". Users are never seeded.
func (s *Store) Seed() {
	now := time.Now()

	jobs := []*domain.Job{
		{
			ID:          uuid.NewString(),
			Title:       "Senior Full Stack Developer",
			Description: "We are looking for an experienced Full Stack Developer to join our team. You will work on building scalable web applications using React, Node.js, and MongoDB. The ideal candidate has 5+ years of experience and strong problem-solving skills.",
			Company:     "TechCorp",
			Type:        "Full-time",
			Location:    strPtr("Remote"),
			Budget:      intPtr(8000),
			Skills:      []string{"React", "Node.js", "MongoDB", "TypeScript"},
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Frontend Developer",
			Description: "Join our creative team to build beautiful user interfaces. Experience with React and modern CSS frameworks required.",
			Company:     "DesignHub",
			Type:        "Contract",
			Location:    strPtr("New York"),
			Budget:      intPtr(5000),
			Skills:      []string{"React", "Tailwind CSS", "JavaScript"},
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Mobile App Developer",
			Description: "Develop cross-platform mobile applications using React Native. Must have experience with iOS and Android deployment.",
			Company:     "AppWorks",
			Type:        "Freelance",
			Location:    strPtr("Remote"),
			Budget:      intPtr(6000),
			Skills:      []string{"React Native", "JavaScript", "Firebase"},
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
	}

	courses := []*domain.Course{
		{
			ID:             uuid.NewString(),
			Title:          "Complete Web Development Bootcamp",
			Description:    "Learn full-stack web development from scratch. This comprehensive course covers HTML, CSS, JavaScript, React, Node.js, and databases.",
			Category:       "Web Development",
			Level:          "Beginner",
			Instructor:     "system",
			InstructorName: strPtr("Sarah Johnson"),
			Duration:       intPtr(40),
			Price:          0,
			Rating:         48,
			EnrolledStudents: []string{},
			Lessons: []domain.Lesson{
				{ID: "1", Title: "Introduction to Web Development", Duration: 30},
				{ID: "2", Title: "HTML Basics", Duration: 45},
				{ID: "3", Title: "CSS Fundamentals", Duration: 60},
			},
			CreatedAt: now,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Advanced React Patterns",
			Description:    "Master advanced React concepts including hooks, context, performance optimization, and state management patterns.",
			Category:       "Frontend",
			Level:          "Advanced",
			Instructor:     "system",
			InstructorName: strPtr("Michael Chen"),
			Duration:       intPtr(25),
			Price:          49,
			Rating:         47,
			EnrolledStudents: []string{},
			Lessons: []domain.Lesson{
				{ID: "1", Title: "Advanced Hooks", Duration: 50},
				{ID: "2", Title: "Performance Optimization", Duration: 45},
			},
			CreatedAt: now,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Data Structures and Algorithms",
			Description:    "Build a strong foundation in computer science fundamentals. Learn essential data structures and algorithm techniques.",
			Category:       "Computer Science",
			Level:          "Intermediate",
			Instructor:     "system",
			InstructorName: strPtr("David Williams"),
			Duration:       intPtr(35),
			Price:          39,
			Rating:         49,
			EnrolledStudents: []string{},
			Lessons: []domain.Lesson{
				{ID: "1", Title: "Arrays and Strings", Duration: 40},
				{ID: "2", Title: "Linked Lists", Duration: 35},
			},
			CreatedAt: now,
		},
	}

	competitions := []*domain.Competition{
		{
			ID:           uuid.NewString(),
			Title:        "Algorithm Sprint Challenge",
			Description:  "Solve 5 algorithmic problems in 2 hours. Test your problem-solving speed and accuracy.",
			Difficulty:   "Medium",
			Category:     "Algorithms",
			Deadline:     now.Add(7 * 24 * time.Hour),
			Prize:        strPtr("$500 Prize Pool"),
			Participants: []string{},
			Submissions:  []domain.Submission{},
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Build a Landing Page",
			Description:  "Create a responsive landing page using HTML, CSS, and JavaScript. Best design wins!",
			Difficulty:   "Easy",
			Category:     "Frontend",
			Deadline:     now.Add(14 * 24 * time.Hour),
			Prize:        strPtr("$300 Prize"),
			Participants: []string{},
			Submissions:  []domain.Submission{},
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Data Science Challenge",
			Description:  "Analyze a dataset and build a predictive model. Advanced machine learning competition.",
			Difficulty:   "Hard",
			Category:     "Data Science",
			Deadline:     now.Add(30 * 24 * time.Hour),
			Prize:        strPtr("$1000 Grand Prize"),
			Participants: []string{},
			Submissions:  []domain.Submission{},
			CreatedAt:    now,
		},
	}

	partTimeJobs := []*domain.PartTimeJob{
		{
			ID:          uuid.NewString(),
			Title:       "Math Tutor Needed",
			Description: "Looking for a math tutor for high school students. Flexible hours, 10-15 hours per week.",
			Company:     "Learning Center",
			Type:        "Teaching",
			Pay:         25,
			Location:    "Boston, MA",
			Distance:    strPtr("2 miles"),
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Delivery Driver",
			Description: "Part-time delivery driver needed for local restaurant. Evening shifts available.",
			Company:     "Quick Eats",
			Type:        "Delivery",
			Pay:         18,
			Location:    "San Francisco, CA",
			Distance:    strPtr("1.5 miles"),
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Retail Associate",
			Description: "Join our retail team! Weekend shifts, customer service experience preferred.",
			Company:     "Fashion Store",
			Type:        "Retail",
			Pay:         16,
			Location:    "New York, NY",
			Distance:    strPtr("3 miles"),
			PostedBy:    "system",
			Applicants:  []string{},
			Status:      domain.JobStatusOpen,
			CreatedAt:   now,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range jobs {
		s.jobs[job.ID] = job
	}
	for _, course := range courses {
		s.courses[course.ID] = course
	}
	for _, competition := range competitions {
		s.competitions[competition.ID] = competition
	}
	for _, job := range partTimeJobs {
		s.partTimeJobs[job.ID] = job
	}
}
