package application

import (
	"errors"
	"os"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// LoadDocument loads path and checks that it holds well-formed JSON.
func LoadDocument(path string) ([]byte, any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, &domain.InputError{Kind: domain.InputNotFound, Path: path, Err: err}
		}
		return nil, nil, &domain.InputError{Kind: domain.InputUnreadable, Path: path, Err: err}
	}

	v, err := domain.ParseJSON(data)
	if err != nil {
		return nil, nil, &domain.InputError{Kind: domain.InputMalformed, Path: path, Err: err}
	}
	return data, v, nil
}
