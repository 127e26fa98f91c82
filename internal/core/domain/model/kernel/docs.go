// Package kernel contains the shared value objects of the dispatch domain:
// the type-tagged identifier scheme and geographic coordinates.
//
// Identifiers have the form "{prefix}-{YYMMDD}-{suffix}" where the prefix is a
// short tag from a closed set of entity kinds, the date part is the UTC
// creation date, and the 5-character suffix mixes lowercase hexadecimal and
// mixed-case alphanumeric characters. Parsing fails closed: any malformed
// prefix, field width, or calendar-invalid month/day makes an identifier
// invalid.
//
// Coordinates is a validated WGS84 point providing the great-circle distance
// approximation used for both pricing estimates and driver proximity search.
package kernel
