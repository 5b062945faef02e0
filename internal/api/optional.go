package api

import "encoding/json"

// OptionalString is a JSON string field that distinguishes "absent" from
// "explicitly null". Patch endpoints need the difference: an absent field
// is left untouched, a null one is cleared.
type OptionalString struct {
	// Present is true when the field appeared in the request body.
	Present bool
	// Valid is true when the field held a string rather than null.
	Valid bool
	// Value is the decoded string when Valid.
	Value string
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// key is present, which is what makes the absent/null distinction work.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer: nil when the field was
// null, the string otherwise.
func (o OptionalString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
