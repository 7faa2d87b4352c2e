// Package resolve turns a typed name into a single person ID. When several
// people share the name, a Chooser picks one; PromptChooser asks on a
// terminal.
package resolve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for name resolution.
var (
	// ErrNoMatch is returned when no person has the name.
	ErrNoMatch = errors.New("resolve: no person with that name")

	// ErrAmbiguous is returned when several people match and no Chooser was given.
	ErrAmbiguous = errors.New("resolve: name is ambiguous")

	// ErrInvalidChoice is returned when the chosen ID is not one of the candidates.
	ErrInvalidChoice = errors.New("resolve: choice is not a candidate")
)

// Chooser picks one ID among candidates sharing name.
type Chooser func(name string, candidates []core.Person) (string, error)

// Lookup is the part of core.Graph that Resolve needs.
type Lookup interface {
	PeopleByName(name string) []core.Person
}

// Resolve returns the ID of the single person called name.
//
// No candidate yields ErrNoMatch and one candidate its ID. Several
// candidates are handed to choose, whose answer must be one of their IDs.
func Resolve(g Lookup, name string, choose Chooser) (string, error) {
	return Pick(name, g.PeopleByName(name), choose)
}

// Pick applies the Resolve rules to an already looked-up candidate list.
func Pick(name string, candidates []core.Person, choose Chooser) (string, error) {
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNoMatch, name)
	case 1:
		return candidates[0].ID, nil
	}

	if choose == nil {
		return "", fmt.Errorf("%w: %q matches %d people", ErrAmbiguous, name, len(candidates))
	}
	id, err := choose(name, candidates)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if c.ID == id {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %q for %q", ErrInvalidChoice, id, name)
}

// PromptChooser lists the candidates on w and reads the chosen ID from r:
//
//	Which 'Kevin Bacon'?
//	ID: 102, Name: Kevin Bacon, Birth: 1958
//	ID: 9999, Name: Kevin Bacon, Birth: 1980
//	Intended Person ID:
//
// Leading and trailing spaces are trimmed. End of input before a line is an error.
func PromptChooser(r io.Reader, w io.Writer) Chooser {
	br := bufio.NewReader(r)
	return func(name string, candidates []core.Person) (string, error) {
		fmt.Fprintf(w, "Which '%s'?\n", name)
		for _, c := range candidates {
			fmt.Fprintf(w, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, c.Birth)
		}
		fmt.Fprint(w, "Intended Person ID: ")

		line, err := br.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", fmt.Errorf("resolve: read choice: %w", err)
		}

		return strings.TrimSpace(line), nil
	}
}
