package target

import "fmt"

// Marshaler is the interface implemented by types that can marshal
// themselves into a request-target token.
type Marshaler interface {
	MarshalTarget() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal a
// request-target token description of themselves.
type Unmarshaler interface {
	UnmarshalTarget([]byte) error
}

// Marshal returns the wire-format bytes of v.
//
// v must be a *Target. The raw target is re-classified before being
// returned, so a Target whose Raw no longer matches its Form fails rather
// than producing a token the receiver would reject.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("target: Marshal(nil)")
	}

	// Check for Marshaler interface
	if m, ok := v.(Marshaler); ok {
		return m.MarshalTarget()
	}

	t, ok := v.(*Target)
	if !ok {
		return nil, fmt.Errorf("target: Marshal unsupported type %T (expected *Target)", v)
	}

	form, err := Classify(t.Raw)
	if err != nil {
		return nil, err
	}
	if form != t.Form {
		return nil, fmt.Errorf("target: Marshal: raw target %q is %v, not %v", t.Raw, form, t.Form)
	}

	out := make([]byte, len(t.Raw))
	copy(out, t.Raw)
	return out, nil
}

// Unmarshal classifies the request-target data and stores the result in v.
//
// v must be a *Target.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("target: Unmarshal(nil)")
	}

	// Check for Unmarshaler interface
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalTarget(data)
	}

	t, ok := v.(*Target)
	if !ok {
		return fmt.Errorf("target: Unmarshal unsupported type %T (expected *Target)", v)
	}

	parsed, err := ClassifyTarget(string(data))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// UnmarshalTarget classifies data as a request target.
func UnmarshalTarget(data []byte) (*Target, error) {
	t := &Target{}
	if err := Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}
