// Package serdeconv provides uniform functions for converting Go values to and
// from TOML, JSON and MessagePack.
//
// Each format offers the same family of functions: From<Format>Str,
// From<Format>Slice, From<Format>Reader and From<Format>File for decoding, and
// To<Format>String, To<Format>Vec, To<Format>Writer and To<Format>File for
// encoding. MessagePack is a binary format and so has no string variants.
//
// Encoding and decoding is delegated to [encoding/json],
// [github.com/BurntSushi/toml] and [github.com/vmihailenco/msgpack/v5].
//
// Every failure is reported as an [*Error]. Its [ErrorKind] is [Invalid] if the
// codec rejected the data, or [Other] if an I/O operation failed.
//
// [Of] and [As] provide the same conversions using method-call syntax.
package serdeconv
