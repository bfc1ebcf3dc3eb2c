// Package provisioning implements the fixed provisioning pipeline:
// repository clone, variable file rendering, Spaces preflight, packer
// image build, the terraform double apply, and output retrieval.
//
// Phases run strictly in order; the first failure aborts the rest of
// the pipeline. There is no rollback: resources created by earlier
// phases stay as they are.
package provisioning
