/*
Package bundle seals a set of table files into a single archive, protected by a password derived from the bundle name.

# How it works:

The files are written to a zip archive, which is encrypted with AES-256-GCM.
The key comes from scrypt, using xor.Password(name) as the passphrase and a random salt.
The scrypt settings and salt are stored in a header at the start of the bundle, and the header is authenticated along with the payload.

Anyone who knows the bundle name can derive the password, so this keeps casual observers out, and detects tampering, but it doesn't keep secrets from someone who knows how bundles are named.
*/
package bundle
