package store

import (
	"bytes"
	"strconv"

	"github.com/mailru/easyjson/jlexer"
)

// Result is a fetched value. Only the field matching Type is set; Raw always holds the JSON as received.
type Result struct {
	Type   string
	Int    int64
	Float  float64
	Bool   bool
	String string
	Raw    []byte
}

func classify(body []byte) (Result, error) {
	in := jlexer.Lexer{Data: body}
	raw := in.Raw()
	if err := in.Error(); err != nil {
		return Result{}, err
	}
	raw = bytes.TrimSpace(raw)
	r := Result{Raw: raw}
	if len(raw) == 0 {
		return Result{}, ErrPathNotExist
	}

	switch raw[0] {
	case 'n':
		r.Type = TypeNull
	case 't', 'f':
		r.Type = TypeBoolean
		r.Bool = raw[0] == 't'
	case '"':
		r.Type = TypeString
		v := jlexer.Lexer{Data: raw}
		r.String = v.String()
		if err := v.Error(); err != nil {
			return Result{}, err
		}
	case '{':
		r.Type = TypeJSON
	case '[':
		r.Type = TypeArray
	default:
		if !bytes.ContainsAny(raw, ".eE") {
			if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
				r.Type = TypeInt
				r.Int = n
				return r, nil
			}
		}
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return Result{}, err
		}
		r.Type = TypeFloat
		r.Float = f
	}
	return r, nil
}

// errorReason pulls the "error" member out of an error reply such as {"error" : "Permission denied"}.
func errorReason(body []byte) string {
	var reason string
	in := jlexer.Lexer{Data: body}
	if in.IsNull() {
		return ""
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "error":
			reason = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		return ""
	}
	return reason
}
