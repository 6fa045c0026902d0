// Package model assembles the module tree of a Listen, Attend and Spell
// acoustic model and renders it the way PyTorch prints an nn.Module.
//
// Only structure and parameter shapes are modelled: there are no tensors,
// no forward pass and no training here.
package model
