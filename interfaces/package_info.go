// Package interfaces contains the public component interfaces and configuration types
// used by the SDK.
//
// Application code normally does not need to refer to these types directly, except when
// defining a custom component implementation (for instance, a custom EventSender for
// testing, or an alternate SessionStore). The standard implementations are created by
// the configuration builders in the epcomponents package.
package interfaces
