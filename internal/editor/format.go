package editor

import "strings"

// Format substitutes {name} placeholders with the supplied values and
// returns the result as a new editor, leaving the receiver unchanged.
// Placeholders without a supplied value are left intact. An empty or nil
// vars map is an identity no-op: the receiver itself is returned.
func (e *Editor) Format(vars map[string]string) *Editor {
	if len(vars) == 0 {
		return e
	}
	cp := e.Copy()
	cp.substitute(vars)
	return cp
}

// FormatInPlace substitutes {name} placeholders in the receiver's own lines
// and returns the receiver, allowing call chaining.
func (e *Editor) FormatInPlace(vars map[string]string) *Editor {
	e.substitute(vars)
	return e
}

func (e *Editor) substitute(vars map[string]string) {
	if len(vars) == 0 {
		return
	}
	replacements := make([]string, 0, 2*len(vars))
	for name, value := range vars {
		replacements = append(replacements, "{"+name+"}", value)
	}
	r := strings.NewReplacer(replacements...)
	for i, line := range e.lines {
		e.lines[i] = r.Replace(line)
	}
}
