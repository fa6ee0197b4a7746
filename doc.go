// Package frame contains the core contract of Frame, an interchange protocol
// for columnar data frames. This root package defines the interfaces a
// data-frame producer implements to expose its shape and per-column logical
// types to consumers and generic tooling, without copying data or agreeing on
// a physical representation. Concrete implementations live in sub-packages
// such as memframe.
package frame
