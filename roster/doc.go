// Package roster turns a YAML roster file into a set of friend.User values.
//
// A roster declares users, the friends appended to each one directly, and
// pairs of users to befriend:
//
//	users:
//	  - name: Cara
//	    friends: [Ann, Zed]
//	  - name: Alice
//	  - name: Bob
//	befriend:
//	  - [Alice, Bob]
//
// Build replays the document in order (AddFriend for each listed friend, then
// MergeWith for each pair) and returns the users sorted by name. Render
// prints one user per line in the friend.User text form.
//
//	r, err := roster.Load("roster.yaml")
//	users, err := r.Build()
//	fmt.Print(roster.Render(users))
//
// Validation rejects duplicate user names (ErrDuplicateUser), pairs that do
// not name exactly two users (ErrMalformedPair) and pairs naming undeclared
// users (ErrUnknownUser).
package roster
