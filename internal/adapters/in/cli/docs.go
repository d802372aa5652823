// Package cli is the operator's terminal menu.
//
// The menu reads numbered choices and scalar answers line by line and
// prints results. It holds no state of its own: every action is a command
// or query handler call, and every failure is printed and the menu goes on.
// End of input behaves like choosing Exit.
//
// Menu tree:
//
//	1 User management     1 add user, 2 find user, 3 recompute memberships
//	2 Package management  1 intake, 2 pickup, 3 lookup, 4 report exception
//	3 Inventory check
//	4 Financial report
//	5 Generate report     1 daily, 2 weekly, 3 monthly
//	0 Exit
package cli
