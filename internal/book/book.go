package book

import "math"

// InvalidID is the identifier produced when a bookId path value is not an integer.
// It is passed to the repository as-is.
const InvalidID int64 = math.MinInt64

// Record is the request body accepted by create and update.
type Record struct {
	Title            string  `json:"title"`
	Author           string  `json:"author"`
	PublicationYear  string  `json:"publicationYear"`
	Publisher        string  `json:"publisher"`
	ISBN             string  `json:"isbn"`
	TotalCopies      int     `json:"totalCopies"`
	AvailableCopies  int     `json:"availableCopies"`
	AcquisitionValue float64 `json:"acquisitionValue"`
	LoanStatus       string  `json:"loanStatus"`
}

// Book represents a catalog entry. ID is zero until the repository assigns one.
type Book struct {
	ID               int64   `json:"bookId"`
	Title            string  `json:"title" validate:"required"`
	Author           string  `json:"author" validate:"required"`
	PublicationYear  string  `json:"publicationYear"`
	Publisher        string  `json:"publisher"`
	ISBN             string  `json:"isbn" validate:"required"`
	TotalCopies      int     `json:"totalCopies" validate:"gte=0"`
	AvailableCopies  int     `json:"availableCopies" validate:"gte=0,ltefield=TotalCopies"`
	AcquisitionValue float64 `json:"acquisitionValue" validate:"gte=0"`
	LoanStatus       string  `json:"loanStatus" validate:"required"`
}

// ToBook builds a new entity from the record. The identifier is left unset.
func (rec Record) ToBook() *Book {
	return &Book{
		Title:            rec.Title,
		Author:           rec.Author,
		PublicationYear:  rec.PublicationYear,
		Publisher:        rec.Publisher,
		ISBN:             rec.ISBN,
		TotalCopies:      rec.TotalCopies,
		AvailableCopies:  rec.AvailableCopies,
		AcquisitionValue: rec.AcquisitionValue,
		LoanStatus:       rec.LoanStatus,
	}
}
