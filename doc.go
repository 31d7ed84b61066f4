// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/zonecheck" displays something
// useful.

/*

Package zonecheck checks that the forward and reverse DNS zones of a set of ipv4 subnets
agree with each other. Every A record should be matched by exactly one PTR at its
address naming the same host, and every PTR should be matched by exactly one A record
for its host carrying the same address. zonecheck reports duplicate definitions, records
without a counterpart and records whose counterpart disagrees.

Zones are loaded from files, http(s) or by AXFR. Results are printed as text and can
also be written as HTML pages showing every address alongside occupant details from
metadata files, or appended to a SQLite database. In watch mode zonecheck reloads its
sources as they change and regenerates its outputs when the results change.

The program lives in cmd/zonecheck.

Project site: https://github.com/markdingo/zonecheck

*/
package zonecheck
