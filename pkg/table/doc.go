/*
Package table screens typed data table values with keys derived from their field names.

Every supported value kind has a fixed encoding: integers use little endian bytes of their own width, and strings use UTF-16LE.
The encoded bytes are XOR screened with a key of the same length, derived from the field name with xor.DeriveKey.

# Floating point values

There are two distinct paths for floats, and they are NOT interchangeable.
  - ConvertFloat and ConvertDouble read the bit pattern of the value as an integer, unscreen it, and scale the result by 0.00001.
  - EncryptFloat and EncryptDouble scale the value by 100000, round it to an integer, screen it, and return the bit pattern of that integer as a float without scaling.

# String envelopes

Screened strings are stored either as Base64 or as lowercase hex.
When a Base64 string is expected but the input is a byte buffer that isn't valid Base64, the buffer is unscreened directly and read as UTF-8.
*/
package table
