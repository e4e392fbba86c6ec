// Package fake produces synthetic journal entries for seeding a journal.
package fake

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces raw fields for a synthetic entry.
// Tags returns a space-separated phrase.
type Generator interface {
	Title() string
	Content() string
	Tags() string
}

// Faker is a Generator backed by gofakeit
type Faker struct {
	f *gofakeit.Faker
}

// New returns a Faker. A zero seed picks a random one.
func New(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

// Title returns a company name
func (g *Faker) Title() string {
	return g.f.Company()
}

// Content returns a catch phrase
func (g *Faker) Content() string {
	return g.f.HackerPhrase()
}

// Tags returns a few buzzwords joined by spaces
func (g *Faker) Tags() string {
	return strings.Join([]string{g.f.BS(), g.f.HackerAdjective(), g.f.HackerNoun()}, " ")
}
