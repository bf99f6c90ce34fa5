package starfeed

import (
	"bytes"
	"strconv"
)

// starDTO mirrors one element of the backend's /stars JSON array.
// Missing fields map to zero values; no item-level validation happens.
type starDTO struct {
	ID          flexID `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// flexID accepts the id field as either a JSON number or a string and
// normalizes numbers to their decimal text form so keys stay stable.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	// Number (or any other scalar): keep the raw text
	*f = flexID(data)
	return nil
}
