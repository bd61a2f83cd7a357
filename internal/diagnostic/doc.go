// Package diagnostic provides structured errors and warnings reported while
// loading and linking a schema package.
//
// Every diagnostic carries a stable code, the module it was found in and a
// path inside that module (for example "User.fields.sex"), plus optional
// "did you mean" suggestions.
package diagnostic
