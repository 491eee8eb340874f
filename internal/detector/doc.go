// Package detector finds java runtimes installed on the host.
//
// A Detector walks directory trees up to a depth bound and turns every
// entry that passes the launcher shape check and answers `java -version`
// into a runtime.JavaRuntime. Environment derives search roots from the
// JAVA_HOME family of variables and PATH.
//
// Per-candidate failures never abort a search; they are logged at debug
// level and the candidate is dropped. Results are returned in discovery
// order and are not deduplicated, see runtime.Unique.
package detector
