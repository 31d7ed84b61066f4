/*
Package netspace models a single IPv4 network in CIDR form along with the 32-bit address
values which live inside it.

An Address is a plain uint32 so it can be used directly as a map key and compared with
the usual operators. A Space is constructed once with Parse() and is immutable
thereafter. The base address of a Space is always network-aligned: any host bits present
in the supplied CIDR are silently cleared, thus "192.168.0.17/24" and "192.168.0.0/24"
produce identical Spaces.

Expected usage is:

	space, err := netspace.Parse("192.168.0.0/24")
	for _, addr := range space.Hosts() {
		if space.Contains(addr) {
			fmt.Println(addr)
		}
	}

Only IPv4 is supported.
*/
package netspace
