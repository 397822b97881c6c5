// Package cli implements the pocket command-line client.
//
// The client bootstraps a device session from a registration payload and
// reports on it. The payload is read from the file given with -r or from
// standard input when it is piped in.
//
// Commands:
//
//	status    bootstrap the session and print device, storage and user
//	register  bootstrap the session and record the device locally, and
//	          with the server when the App has a registrar (WithRegistrar)
//	payload   print a registration payload template with a fresh device id
//	help      print usage
//
// status is the default when no command is given.
package cli
