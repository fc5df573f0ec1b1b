// Package xgps encodes the textual XGPS position datagram understood
// by EFB apps (ForeFlight and friends listen on UDP 49002).
package xgps

import "fmt"

// Port is the UDP port EFB apps listen on for XGPS datagrams.
const Port = 49002

// Tag identifies the sending device. EFBs display everything after
// the "XGPS" prefix as the source name.
const Tag = "XGPSSimulator"

const (
	feetToMeters        = 0.3048
	knotsToMetersPerSec = 0.514444
)

// Datagram encodes one position report:
//
//	XGPSSimulator,<lon>,<lat>,<alt m>,<heading>,<speed m/s>
//
// Longitude and latitude carry 8 decimals; altitude (converted from
// feet to meters), heading and ground speed (converted from knots to
// m/s) carry 2.
func Datagram(latDeg, lonDeg, altFeet, headingDeg, groundKt float64) []byte {
	return []byte(fmt.Sprintf("%s,%.8f,%.8f,%.2f,%.2f,%.2f",
		Tag, lonDeg, latDeg, altFeet*feetToMeters, headingDeg, groundKt*knotsToMetersPerSec))
}
