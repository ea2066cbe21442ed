// Package epfilestore provides a file-backed session store, allowing a session to survive
// process restarts.
//
// To use it, store it in the Sessions configuration of the client:
//
//	config := epclient.Config{
//	    Sessions: epcomponents.SessionTracking().
//	        Store(epfilestore.SessionStore("/var/lib/myapp/session.json")),
//	}
package epfilestore
