package faults

import (
	"fmt"
	"io"
)

// Classify inspects value and either succeeds, emitting the validity
// line on w, or returns a fault. Rules apply in fixed priority order,
// first match wins:
//
//	value < 0    InvalidArgument
//	value == 0   CustomDomain
//	value > 100  Overflow
//	value == 99  Allocation
//	otherwise    success
//
// The overflow-before-allocation ordering is kept from the original
// exercise even though it can never matter: 99 fails the overflow test,
// so the allocation rule is reachable exactly and only for 99.
//
// Every call acquires a Guard before the first rule and releases it on
// every exit path, so the acquire/release pair brackets the call
// whether it succeeds or faults.
func Classify(w io.Writer, value int) error {
	guard := Acquire(w)
	defer guard.Release()

	if value < 0 {
		return New(KindInvalidArgument, "Negative value is not allowed.")
	}
	if value == 0 {
		return New(KindCustomDomain, "Zero is not permitted.")
	}
	if value > 100 {
		return New(KindOverflow, "Value exceeds the allowable range.")
	}
	if value == 99 {
		return New(KindAllocation, "")
	}

	fmt.Fprintf(w, "Value is valid: %d\n", value)
	return nil
}

// SafeOperation emits its fixed line and cannot fail: the no-throw
// guarantee is expressed in the signature, which has no error to
// return. If it ever panicked the process would terminate; callers
// need no guarding machinery around it.
func SafeOperation(w io.Writer) {
	fmt.Fprintln(w, "This operation is guaranteed not to throw an exception.")
}
