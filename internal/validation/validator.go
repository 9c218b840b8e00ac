// Package validation checks request payload shapes before the board
// mutates anything. Referential checks (does the user exist, is the
// article live) belong to the board, which owns the store.
package validation

// FieldError describes a single failed payload check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserPayload validates a get-or-create user request body.
func UserPayload(username string) []FieldError {
	if username == "" {
		return []FieldError{{Field: "username", Message: "username is required"}}
	}
	return nil
}

// ArticlePayload validates the client-settable article fields for
// creation. Every field is required.
func ArticlePayload(title, url, username string) []FieldError {
	var errs []FieldError
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if url == "" {
		errs = append(errs, FieldError{Field: "url", Message: "url is required"})
	}
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	}
	return errs
}

// CommentPayload validates the client-settable comment fields for
// creation.
func CommentPayload(body, username string, articleID int) []FieldError {
	var errs []FieldError
	if body == "" {
		errs = append(errs, FieldError{Field: "body", Message: "body is required"})
	}
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	}
	if articleID == 0 {
		errs = append(errs, FieldError{Field: "articleId", Message: "articleId is required"})
	}
	return errs
}
