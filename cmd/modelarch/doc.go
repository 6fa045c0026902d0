// Command modelarch prints the architecture of Listen, Attend and Spell models.
//
// Without flags it prints two models: a VGG-fronted listener with a
// dot-product attention speller, and a Deep Speech 2 fronted listener with a
// location-aware attention speller.
//
// Usage:
//
//	modelarch [--extractor vgg|ds2] [--attention dot|loc|multi-head]
package main
