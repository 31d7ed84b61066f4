package dns

import (
	"github.com/miekg/dns"
)

// StartServer starts a miekg DNS server on serverAddr and does not return until the
// listen socket is ready. The caller should Shutdown() the returned server when done.
func StartServer(net, serverAddr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: serverAddr, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		close(hasStarted)
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil { // Shutdown or real error?
			select {
			case <-hasStarted:
			default:
				panic("Setup of Server failed:" + err.Error())
			}
		}
	}()

	<-hasStarted

	return srv
}
