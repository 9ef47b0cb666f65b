// Package score provides the pairwise scoring kernel used to compare a
// tracked object's attribute value against a candidate detection's
// attribute value.
//
// Every function here is pure: given the same two attribute values and the
// same Kind, it returns the same score. Lower is better; math.Inf(1) means
// the pairing is forbidden. Kinds are a closed enum (Kind), not a string
// dispatch table — extending the kernel means adding a new Kind constant
// and a new case in Compute, never a runtime string lookup (see spec.md §9
// "Pattern rewrites").
package score
