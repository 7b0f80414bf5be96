// Package memory implements the repository interfaces over in-process
// keyed collections. One Store instance owns all canonical state; the
// per-entity repositories share it. Nothing survives a restart.
package memory

import (
	"sort"
	"sync"

	"go-careerhub-backend/internal/domain"
)

// Store holds one map per entity kind behind a single RWMutex. Every
// uniqueness or membership check runs inside the same critical section
// as its mutation, so check-then-act sequences cannot interleave.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	jobs         map[string]*domain.Job
	courses      map[string]*domain.Course
	competitions map[string]*domain.Competition
	portfolios   map[string]*domain.Portfolio // keyed by user id (1:1)
	partTimeJobs map[string]*domain.PartTimeJob
	posts        map[string]*domain.Post
	connections  map[string]*domain.Connection
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*domain.User),
		jobs:         make(map[string]*domain.Job),
		courses:      make(map[string]*domain.Course),
		competitions: make(map[string]*domain.Competition),
		portfolios:   make(map[string]*domain.Portfolio),
		partTimeJobs: make(map[string]*domain.PartTimeJob),
		posts:        make(map[string]*domain.Post),
		connections:  make(map[string]*domain.Connection),
	}
}

// contains reports membership of id in a list-valued field.
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// sortNewestFirst orders items by descending creation time. Ties keep
// arbitrary order; stability across calls is not guaranteed.
func sortNewestFirst[T any](items []T, createdAt func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}
