/*
Package persi provides persistent (immutable, structurally-shared)
collections: a singly-linked list and an ordered map built on a
red-black tree.  Every operation that looks like a mutation returns
a new version of the structure; earlier versions stay valid and
usable forever.  Versions share all untouched nodes by reference,
so a new version costs O(1) for a list push and O(log n) for a map
insert, not a copy of the whole structure.

Node capabilities

The collections are written once, generically, against a small node
capability interface (Link for list nodes, RBLink for tree nodes).
Two node disciplines implement each capability:

- unsync: nodes carry a plain reference count and must stay confined
to a single goroutine.

- sync: nodes carry an atomic reference count and may be shared
freely across goroutines.  Nodes are never modified after they are
created, so the count is the only word that ever needs
synchronization; immutability is the entire safety argument.

Most callers want the ready-made types in the unsync or sync
subpackages and never touch the capability interfaces directly.

Ownership

Reference counts track how many versions own each node.  Calling
Release on a handle walks the structure iteratively, unlinking nodes
whose count reaches zero, so teardown never recurses to a depth
proportional to the structure.  Release is optional: the garbage
collector reclaims abandoned versions on its own, and counts only
ever over-approximate ownership, so an explicit Release can never
free a node that another version still references.

Inspiration

The immutable data types in Clojure, Haskell, ML and other functional
languages really do make it easier to "reason about" systems; easier
to test, provide a foundation to build more quickly on.  The balanced
tree here is the classic four-case rebalancing insert from Okasaki's
"Purely Functional Data Structures".
*/
package persi
