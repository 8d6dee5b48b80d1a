// Package rules decides which message a user receives for an invocation.
//
// An Item is a named rule: an ordered list of per-position conditions and
// the template to send when they hold. A User is an ordered list of items.
//
// # Conditions
//
// Condition i is tested against argument i. An empty condition accepts any
// value; anything else is a regular expression that must match at the
// start of the argument (it is not anchored at the end):
//
//	[items.disk-critical]
//	conditions = ["^disk$", "9[0-9]%|100%"]
//	template = "disk"
//
//	[items.catchall]
//	conditions = []
//	template = "generic"
//
// All conditions must pass. An item with more conditions than there are
// arguments never matches; an item with no conditions matches everything.
//
// # Selection
//
// A user receives at most one item per invocation: the first of their
// items, in configured order, that matches. Grouping collects users by the
// id of the item they selected so each distinct message is built once.
package rules
