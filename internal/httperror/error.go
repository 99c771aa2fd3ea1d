// Package httperror provides the error envelope all API endpoints use.
package httperror

type Error struct {
	Message string `json:"error" example:"the body of your request contains invalid or un-parseable data"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
