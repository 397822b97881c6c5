// Package session bootstraps a device session from a registration payload.
//
// A session moves through the states
//
//	Uninitialized -> ConfigResolved -> DeviceParsed -> StoreOpened -> Ready
//
// and ends in Failed when any step fails, or in Closed after Close. New
// covers the steps up to DeviceParsed: it decodes the payload, resolves the
// storage directory and takes the per-device lock. Init opens the device
// database and loads the signed-in user, if any.
//
//	s, err := session.New(payload, "", session.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	user, err := s.Init(ctx)
//
// A session owns its lock and its database connection exclusively. It is not
// safe for concurrent use.
package session
