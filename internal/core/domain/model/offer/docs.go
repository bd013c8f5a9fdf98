// Package offer contains the Offer aggregate: an exclusive, time-boxed
// proposal of one order to one courier, together with its status state
// machine (pending -> accepted | rejected | expired).
package offer
