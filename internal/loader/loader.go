package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/buger/jsonparser"

	"github.com/nao1215/favbooks/internal/model"
)

// Field names of the visitor document.
const (
	keyName           = "name"
	keySurname        = "surname"
	keyFavoriteBooks  = "favoriteBooks"
	keyAuthor         = "author"
	keyPublishingYear = "publishingYear"
)

// DiagnosticPrefix starts the line written to the error stream on load failure.
const DiagnosticPrefix = "Error reading JSON file: "

// Load reads and parses the visitor document at path.
// The file is closed before Load returns on every path.
// All errors wrap ErrLoadFailure.
func Load(path string) (model.Visitors, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, path, err)
	}

	visitors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, path, err)
	}
	return visitors, nil
}

// LoadOrEmpty loads the visitor document and never fails the caller.
// On error it writes one diagnostic line to errOut, logs at info level and
// returns an empty visitor list together with the error so the caller can
// record it.
func LoadOrEmpty(path string, errOut io.Writer, logger *slog.Logger) (model.Visitors, error) {
	if logger == nil {
		logger = slog.Default()
	}

	visitors, err := Load(path)
	if err != nil {
		fmt.Fprintln(errOut, DiagnosticPrefix+err.Error())
		logger.Info("continuing with an empty visitor list", "path", path, "error", err)
		return model.Visitors{}, err
	}

	logger.Debug("visitors loaded", "path", path, "count", len(visitors))
	return visitors, nil
}

// Parse decodes a visitor document held in memory.
// Source order of visitors and of each favorite list is preserved.
func Parse(data []byte) (model.Visitors, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyDocument
	}

	// jsonparser only checks the bytes it walks, so the whole document is
	// validated first.
	if !json.Valid(data) {
		return nil, errMalformed
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	if dataType != jsonparser.Array {
		return nil, errNotArray
	}

	visitors := make(model.Visitors, 0)
	var parseErr error
	index := 0

	_, err = jsonparser.ArrayEach(value, func(elem []byte, elemType jsonparser.ValueType, _ int, cbErr error) {
		defer func() { index++ }()
		if parseErr != nil {
			return
		}
		if cbErr != nil {
			parseErr = cbErr
			return
		}
		if elemType != jsonparser.Object {
			parseErr = fmt.Errorf("visitor %d: expected object, got %s", index, elemType)
			return
		}

		v, err := parseVisitor(elem)
		if err != nil {
			parseErr = fmt.Errorf("visitor %d: %w", index, err)
			return
		}
		visitors = append(visitors, v)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}

	return visitors, nil
}

// parseVisitor decodes one visitor object.
func parseVisitor(data []byte) (model.Visitor, error) {
	v := model.Visitor{FavoriteBooks: []model.Book{}}

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case keyName:
			v.Name, err = parseString(keyName, value, dataType)
		case keySurname:
			v.Surname, err = parseString(keySurname, value, dataType)
		case keyFavoriteBooks:
			v.FavoriteBooks, err = parseBooks(value, dataType)
		}
		return err
	})
	if err != nil {
		return model.Visitor{}, err
	}
	return v, nil
}

// parseBooks decodes a favoriteBooks array. Null yields an empty list.
func parseBooks(data []byte, dataType jsonparser.ValueType) ([]model.Book, error) {
	books := []model.Book{}

	switch dataType {
	case jsonparser.Null:
		return books, nil
	case jsonparser.Array:
	default:
		return nil, fmt.Errorf("field %s: expected array, got %s", keyFavoriteBooks, dataType)
	}

	var parseErr error
	index := 0
	_, err := jsonparser.ArrayEach(data, func(elem []byte, elemType jsonparser.ValueType, _ int, cbErr error) {
		defer func() { index++ }()
		if parseErr != nil {
			return
		}
		if cbErr != nil {
			parseErr = cbErr
			return
		}
		if elemType != jsonparser.Object {
			parseErr = fmt.Errorf("book %d: expected object, got %s", index, elemType)
			return
		}

		b, err := parseBook(elem)
		if err != nil {
			parseErr = fmt.Errorf("book %d: %w", index, err)
			return
		}
		books = append(books, b)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return books, nil
}

// parseBook decodes one book object.
func parseBook(data []byte) (model.Book, error) {
	var b model.Book

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case keyName:
			b.Name, err = parseString(keyName, value, dataType)
		case keyAuthor:
			b.Author, err = parseString(keyAuthor, value, dataType)
		case keyPublishingYear:
			b.PublishingYear, err = parseInt(keyPublishingYear, value, dataType)
		}
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return b, nil
}

// parseString decodes a string field. Null yields "".
func parseString(field string, value []byte, dataType jsonparser.ValueType) (string, error) {
	switch dataType {
	case jsonparser.Null:
		return "", nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field, err)
		}
		return s, nil
	default:
		return "", fmt.Errorf("field %s: expected string, got %s", field, dataType)
	}
}

// parseInt decodes an integer field. Null yields 0.
func parseInt(field string, value []byte, dataType jsonparser.ValueType) (int, error) {
	switch dataType {
	case jsonparser.Null:
		return 0, nil
	case jsonparser.Number:
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			return 0, fmt.Errorf("field %s: expected integer: %w", field, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("field %s: expected number, got %s", field, dataType)
	}
}
