package catalog

import "strings"

// NoResultsMessage is shown when a search matches nothing.
const NoResultsMessage = "Aucun résultat"

// Book is an entry of the search page.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Books is the fixed list rendered by the search page.
var Books = []Book{
	{Title: "Dune", Author: "Frank Herbert"},
	{Title: "1984", Author: "George Orwell"},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
}

// SearchBooks filters books by a case-insensitive substring of title or author.
// A blank query returns every book.
func SearchBooks(books []Book, query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		all := make([]Book, len(books))
		copy(all, books)
		return all
	}

	matches := []Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			matches = append(matches, b)
		}
	}
	return matches
}
