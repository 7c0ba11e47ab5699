package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
)

// decodePayload accepts a non-empty JSON object or array. Objects become
// bson.D so the client's key order is what gets stored, arrays become bson.A,
// and numbers become float64.
func decodePayload(body []byte) (any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, &ValidationError{Message: msgEmptyBody}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	payload, err := decodeValue(dec)
	if err != nil {
		return nil, &ValidationError{Message: msgInvalidJSON}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Message: msgInvalidJSON}
	}

	switch v := payload.(type) {
	case nil:
		return nil, &ValidationError{Message: msgEmptyBody}
	case bson.D:
		if len(v) == 0 {
			return nil, &ValidationError{Message: msgEmptyBody}
		}
	case bson.A:
		if len(v) == 0 {
			return nil, &ValidationError{Message: msgEmptyBody}
		}
	default:
		return nil, &ValidationError{Message: msgNotContainer}
	}
	return payload, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return t.Float64()
	default:
		// string, bool or nil
		return t, nil
	}
}

// decodeObject reads members up to the closing brace. A repeated key keeps
// its first position and takes the last value.
func decodeObject(dec *json.Decoder) (bson.D, error) {
	doc := bson.D{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			doc[i].Value = value
			continue
		}
		index[key] = len(doc)
		doc = append(doc, bson.E{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeArray(dec *json.Decoder) (bson.A, error) {
	arr := bson.A{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
