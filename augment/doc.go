// Package augment implements SpecAugment-style masking of feature matrices.
//
// Time masks zero a run of consecutive frames across every channel and
// frequency masks zero a run of consecutive channels across every frame.
// Randomness comes from an injected Source so a seeded generator reproduces
// the exact same masks.
package augment
