// Package epfilewatch allows the SDK client to reload file-based stream configuration
// automatically whenever the files change. It is used in conjunction with the epfiledata
// package. The two packages are separate so as to avoid bringing additional dependencies for
// users who do not need automatic reloading.
package epfilewatch
