/*
Package xor provides name-keyed XOR screening of lower sensitivity data, such as the contents of data tables.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.

# How it works:

A name (such as a table column or field name) is hashed with xxHash32, and the hash seeds an MT19937 generator.
The low byte of each generated word becomes one byte of the key, so the same name and length always produce the same key.
Keys are never stored, they're regenerated whenever data needs to be screened or unscreened.

The key is applied to the data with a bitwise XOR.
When the data is longer than the key, the data is split into key-sized chunks and every chunk starts again from the first key byte.
When the data is shorter than the key, only the leading bytes of the key are used.
Applying the same key twice restores the original data.

# General guidelines:
  - Use DeriveKey with the length of the data to get a key that covers every byte without repetition.
  - The Reader and Writer types screen streams, and may start at an offset within the key.
  - A name that hashes to 0 still produces a deterministic key, but every such name shares it.
*/
package xor
