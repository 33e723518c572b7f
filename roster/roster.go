package roster

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/opd-ai/friendgraph/friend"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownUser indicates a befriend pair naming an undeclared user
	ErrUnknownUser = errors.New("unknown user")

	// ErrMalformedPair indicates a befriend entry without exactly two names
	ErrMalformedPair = errors.New("befriend entry must name exactly two users")

	// ErrDuplicateUser indicates the same name declared twice in users
	ErrDuplicateUser = errors.New("duplicate user")
)

// Entry declares one user and the friends appended to it directly.
type Entry struct {
	Name    string   `yaml:"name"`
	Friends []string `yaml:"friends,omitempty"`
}

// Roster is the parsed roster document.
type Roster struct {
	Users []Entry `yaml:"users"`
	// Befriend lists pairs of user names merged in order.
	Befriend [][]string `yaml:"befriend,omitempty"`
}

// Load reads and parses the roster file at path.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a YAML roster and validates it.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Parse",
		"users":    len(r.Users),
		"befriend": len(r.Befriend),
	}).Debug("Roster parsed")

	return &r, nil
}

// Validate checks that user names are unique and that every befriend pair
// names two declared users.
func (r *Roster) Validate() error {
	declared := make(map[string]struct{}, len(r.Users))
	for _, e := range r.Users {
		if _, ok := declared[e.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateUser, e.Name)
		}
		declared[e.Name] = struct{}{}
	}

	for i, pair := range r.Befriend {
		if len(pair) != 2 {
			return fmt.Errorf("%w: entry %d has %d names", ErrMalformedPair, i, len(pair))
		}
		for _, name := range pair {
			if _, ok := declared[name]; !ok {
				return fmt.Errorf("%w: %q in befriend entry %d", ErrUnknownUser, name, i)
			}
		}
	}
	return nil
}

// Build creates one User per entry, appends its listed friends, replays the
// befriend pairs in order and returns the users sorted by name.
func (r *Roster) Build() ([]*friend.User, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	users := make([]*friend.User, 0, len(r.Users))
	byName := make(map[string]*friend.User, len(r.Users))
	for _, e := range r.Users {
		u := friend.New(e.Name)
		for _, f := range e.Friends {
			u.AddFriend(f)
		}
		users = append(users, u)
		byName[e.Name] = u
	}

	for _, pair := range r.Befriend {
		byName[pair[0]].MergeWith(byName[pair[1]])
	}

	slices.SortStableFunc(users, friend.ByName)

	logrus.WithFields(logrus.Fields{
		"function": "Build",
		"users":    len(users),
		"merges":   len(r.Befriend),
	}).Info("Roster built")

	return users, nil
}

// Render returns one rendered user per line.
func Render(users []*friend.User) string {
	var sb strings.Builder
	for _, u := range users {
		sb.WriteString(u.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
