package search

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Item is one searchable record.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var defaultItems = []Item{
	{ID: 1, Name: "React Query"},
	{ID: 2, Name: "React Hooks"},
	{ID: 3, Name: "React Router"},
	{ID: 4, Name: "React State Management"},
	{ID: 5, Name: "React Performance Optimization"},
	{ID: 6, Name: "React Tutorial"},
	{ID: 7, Name: "React Best Practices"},
	{ID: 8, Name: "React vs Vue"},
	{ID: 9, Name: "React Interview Questions"},
	{ID: 10, Name: "React Roadmap"},
	{ID: 11, Name: "Next.js Server Components"},
	{ID: 12, Name: "Next.js API Routes"},
	{ID: 13, Name: "Next.js Middleware"},
	{ID: 14, Name: "Next.js Authentication"},
	{ID: 15, Name: "Next.js Performance Optimization"},
	{ID: 16, Name: "Next.js Tutorial"},
	{ID: 17, Name: "Next.js vs React"},
	{ID: 18, Name: "Next.js SEO Best Practices"},
	{ID: 19, Name: "Next.js Roadmap"},
	{ID: 20, Name: "Next.js Interview Questions"},
	{ID: 21, Name: "TypeScript Basics"},
	{ID: 22, Name: "TypeScript Interfaces"},
	{ID: 23, Name: "TypeScript Generics"},
	{ID: 24, Name: "TypeScript Utility Types"},
	{ID: 25, Name: "TypeScript vs JavaScript"},
	{ID: 26, Name: "TypeScript Tutorial"},
	{ID: 27, Name: "TypeScript Best Practices"},
	{ID: 28, Name: "TypeScript Roadmap"},
	{ID: 29, Name: "TypeScript Interview Questions"},
	{ID: 30, Name: "TypeScript Performance Optimization"},
	{ID: 31, Name: "Node.js Streams"},
	{ID: 32, Name: "Node.js Event Loop"},
	{ID: 33, Name: "Node.js File System"},
	{ID: 34, Name: "Node.js Authentication"},
	{ID: 35, Name: "Node.js WebSockets"},
	{ID: 36, Name: "Node.js Tutorial"},
	{ID: 37, Name: "Node.js Best Practices"},
	{ID: 38, Name: "Node.js vs Deno"},
	{ID: 39, Name: "Node.js Performance Optimization"},
	{ID: 40, Name: "Node.js Interview Questions"},
	{ID: 41, Name: "Redux Toolkit"},
	{ID: 42, Name: "Redux Middleware"},
	{ID: 43, Name: "Redux Thunk"},
	{ID: 44, Name: "Redux Saga"},
	{ID: 45, Name: "Redux vs Context API"},
	{ID: 46, Name: "Redux Tutorial"},
	{ID: 47, Name: "Redux Best Practices"},
	{ID: 48, Name: "Redux Performance Optimization"},
	{ID: 49, Name: "Redux Interview Questions"},
	{ID: 50, Name: "Redux Roadmap"},
	{ID: 51, Name: "Tailwind CSS Grid"},
	{ID: 52, Name: "Tailwind CSS Flexbox"},
	{ID: 53, Name: "Tailwind CSS Animations"},
	{ID: 54, Name: "Tailwind CSS Responsive Design"},
	{ID: 55, Name: "Tailwind CSS Dark Mode"},
	{ID: 56, Name: "Tailwind CSS Tutorial"},
	{ID: 57, Name: "Tailwind CSS Best Practices"},
	{ID: 58, Name: "Tailwind CSS vs Bootstrap"},
	{ID: 59, Name: "Tailwind CSS Performance Optimization"},
	{ID: 60, Name: "Tailwind CSS Interview Questions"},
}

// Default returns a copy of the built-in dataset.
func Default() []Item {
	items := make([]Item, len(defaultItems))
	copy(items, defaultItems)
	return items
}

// LoadItems decodes a JSON array of items.
func LoadItems(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, errors.Wrap(err, "decode items")
	}
	return items, nil
}
