// Package friend implements the User entity: a named value that owns an
// ordered, growable list of friend names.
//
// Example:
//
//	alice := friend.New("Alice")
//	bob := friend.New("Bob")
//	alice.MergeWith(bob)
//	fmt.Println(alice) // User(name=Alice, friends=[Bob])
package friend

import (
	"strings"

	"github.com/opd-ai/friendgraph/namebuf"
	"github.com/sirupsen/logrus"
)

// User is a named entity with a list of friend names. Duplicates are
// allowed and insertion order is kept.
//
// A User is not safe for concurrent use: at most one goroutine may mutate a
// User at a time, and no goroutine may read it during a write.
type User struct {
	name    string
	friends *namebuf.Buffer
}

// New creates a User with the given name and no friends. Any text is
// accepted, including the empty string.
func New(name string) *User {
	logrus.WithFields(logrus.Fields{
		"function": "New",
		"name":     name,
	}).Debug("Creating new user")

	return &User{
		name:    name,
		friends: namebuf.New(),
	}
}

// buffer returns the friend buffer, allocating it for a zero User.
func (u *User) buffer() *namebuf.Buffer {
	if u.friends == nil {
		u.friends = namebuf.New()
	}
	return u.friends
}

// view returns the friend buffer for reading. A zero User gets an empty
// buffer that is not stored.
func (u *User) view() *namebuf.Buffer {
	if u.friends == nil {
		return namebuf.New()
	}
	return u.friends
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// AddFriend appends name to the friend list. Neither duplicates nor the
// user's own name are rejected.
func (u *User) AddFriend(name string) {
	logrus.WithFields(logrus.Fields{
		"function": "AddFriend",
		"user":     u.name,
		"friend":   name,
	}).Debug("Adding friend")

	u.buffer().Append(name)
}

// FriendCount returns the number of friends.
func (u *User) FriendCount() int {
	if u.friends == nil {
		return 0
	}
	return u.friends.Len()
}

// Friend returns the friend name at index.
func (u *User) Friend(index int) (string, error) {
	return u.view().Get(index)
}

// Friends returns a copy of the friend list in insertion order.
func (u *User) Friends() []string {
	return u.view().Values()
}

// SetFriendAt overwrites the friend at index. It fails with
// limits.ErrOutOfRange when index is negative or >= FriendCount.
func (u *User) SetFriendAt(index int, name string) error {
	if err := u.view().Set(index, name); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "SetFriendAt",
		"user":     u.name,
		"index":    index,
		"friend":   name,
	}).Debug("Friend updated")

	return nil
}

// Clone returns a deep copy of u. The copy owns its own friend buffer.
func (u *User) Clone() *User {
	return &User{
		name:    u.name,
		friends: u.view().Clone(),
	}
}

// Assign replaces u's name and friends with a deep copy of other's and
// returns u. Assigning a user to itself leaves it unchanged.
//
// The old buffer is dropped, not released in place: a struct copy of a User
// shares its buffer, and releasing it would empty the other holder.
func (u *User) Assign(other *User) *User {
	if u == other {
		return u
	}

	u.name = other.name
	u.friends = other.view().Clone()

	logrus.WithFields(logrus.Fields{
		"function":     "Assign",
		"user":         u.name,
		"friend_count": u.friends.Len(),
	}).Debug("User assigned")

	return u
}

// MergeWith befriends u and other: other's name is appended to u's friends
// and u's name to other's. No existing friendship is checked. When other is
// u itself, u's own name is appended twice.
func (u *User) MergeWith(other *User) {
	u.AddFriend(other.name)
	other.AddFriend(u.name)

	logrus.WithFields(logrus.Fields{
		"function": "MergeWith",
		"user":     u.name,
		"other":    other.name,
	}).Info("Users befriended")
}

// Compare orders users by name alone. It returns -1, 0 or +1.
func (u *User) Compare(other *User) int {
	return strings.Compare(u.name, other.name)
}

// Less reports whether u sorts before other by name.
func (u *User) Less(other *User) bool {
	return u.Compare(other) < 0
}

// Equal reports whether neither user sorts before the other, i.e. the names
// match. Friend lists are not compared.
func (u *User) Equal(other *User) bool {
	return !u.Less(other) && !other.Less(u)
}

// ByName compares two users by name, for use with slices.SortFunc.
func ByName(a, b *User) int {
	return a.Compare(b)
}

// String renders u as "User(name=<name>, friends=[<f0>, <f1>, ...])".
func (u *User) String() string {
	var sb strings.Builder
	sb.WriteString("User(name=")
	sb.WriteString(u.name)
	sb.WriteString(", friends=[")
	if u.friends != nil {
		for i, name := range u.friends.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
		}
	}
	sb.WriteString("])")
	return sb.String()
}

// Release frees the friend buffer. The user keeps its name and is left with
// no friends; releasing again is a no-op.
func (u *User) Release() {
	u.friends.Release()
}
