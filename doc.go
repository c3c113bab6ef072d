/*
Package ordkey defines a tagged, order-preserving text encoding for
int64, float64, and byte-string values, plus the escape tags and
handler plumbing needed to hand arbitrary-precision numbers to a
caller-supplied decoder instead of decoding them itself.

The core type here is not a Go value type: it is the wire format
itself, a sequence of tagged fields each terminated by '+' or '~'. Two
encoded byte strings compare, byte for byte, in the same order as the
values they represent - that guarantee is the entire point of the
package, and it is why the API is built around appending to a [Buffer]
and tokenizing back out through a [Loader] rather than around a single
Encode/Decode pair on some interface.

Packing functions append a field's encoding to a [Buffer]:
  - [PackInt] for int64
  - [PackFloat] for float64
  - [PackString] for an arbitrary byte string plus an [Encoding] hint
  - [PackBigInt], [PackBigFloat] for arbitrary-precision numbers

[Tokenize] walks a byte slice built this way, dispatching each field to
the matching handler on a [Loader]. A [Loader] is a record of six
handler functions plus an opaque App value the handlers populate;
[NewLoader] wires sensible defaults, and [AttachBigHandlers] additionally
wires big.Int/big.Float reconstruction for callers whose App implements
[BigSink]. [NewCollectorLoader] bundles both into a ready-made App type,
[Collector], for callers who just want to decode one field and inspect it.

[Record] is a small convenience wrapper over [Buffer] for building a
composite key out of several fields in sequence.
*/
package ordkey
