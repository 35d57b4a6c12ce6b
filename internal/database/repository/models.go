package repository

// Book represents a catalog row.
type Book struct {
	ID     string
	Title  string
	Author string
	Year   int
	Pages  int
	Rating float64
}

// Key returns the stable identity used by list components.
func (b Book) Key() string { return b.ID }

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row scanner) (Book, error) {
	var b Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Pages, &b.Rating); err != nil {
		return Book{}, err
	}
	return b, nil
}
