package book

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Valid reports whether b can be stored. Repositories treat an invalid book
// as an operation that did not apply.
func Valid(b *Book) bool {
	if b == nil {
		return false
	}
	return validate.Struct(b) == nil
}

// ValidationProblems lists the failing fields of b, for logging.
func ValidationProblems(b *Book) string {
	err := validate.Struct(b)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}
	return strings.Join(fields, ",")
}

// ValidID reports whether id can refer to a stored book.
func ValidID(id int64) bool {
	return id > 0
}
