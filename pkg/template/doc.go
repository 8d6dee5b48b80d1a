// Package template implements the message templates items resolve to.
//
// A template has a subject and a body. Both may contain positional
// placeholders written {0}, {1}, ... which are replaced by the invocation's
// arguments at the same position. Literal braces are written {{ and }}.
//
//	subject = "Disk {0} at {1}"
//	body    = "<p>Host {2}: volume {0} is {1} full.</p>"
//
// Templates are parsed once. Parsing rejects any placeholder that is not a
// plain index (named fields, empty braces, conversions and format specs),
// so filling never fails: when an invocation supplies fewer arguments than
// the template references, the missing ones are filled with a sentinel
// value ("[NO DATA]" by default) and a warning is logged.
package template
