// Package friend implements the User entity, a named value that owns an
// ordered list of friend names backed by a namebuf.Buffer.
//
// # Overview
//
// A User is created with a name and an empty friend list. The list grows by
// AddFriend and by MergeWith, and single entries can be overwritten with
// SetFriendAt:
//
//	u := friend.New("Cara")
//	u.AddFriend("Ann")
//	u.AddFriend("Zed")
//	fmt.Println(u) // User(name=Cara, friends=[Ann, Zed])
//
//	if err := u.SetFriendAt(2, "Bob"); err != nil {
//	    // errors.Is(err, limits.ErrOutOfRange)
//	}
//
// # Copying and Assignment
//
// Clone is copy-construction and Assign is copy-assignment. Both deep copy
// the friend buffer, so later changes to either side are never visible in
// the other:
//
//	v := u.Clone()
//	v.AddFriend("Eve") // u still has two friends
//
//	w := friend.New("Wes")
//	w.Assign(u)        // w is now named Cara with friends [Ann, Zed]
//	w.Assign(w)        // no-op
//
// Copying the User struct by value, or sharing the *User, aliases the friend
// list. Use Clone when an independent value is needed.
//
// # Befriending
//
// MergeWith appends each user's name to the other's friend list. It does not
// check for an existing friendship, so repeated merges add duplicates. A
// user merged with itself gets its own name appended twice. The two lists
// are independent afterwards; no shared edge is kept.
//
//	a, b := friend.New("A"), friend.New("B")
//	a.MergeWith(b) // a: [B], b: [A]
//
// # Ordering
//
// Users are ordered by name only. Compare returns -1, 0 or +1, Less reports
// strict ordering and Equal is derived from Less, so two users with the same
// name are equal whatever their friends. ByName plugs into slices.SortFunc:
//
//	slices.SortFunc(users, friend.ByName)
//
// # Thread Safety
//
// User methods are not thread-safe; callers must synchronize access. At most
// one goroutine may mutate a User, and none may read it during a write.
package friend
