package wizard

import "github.com/charmbracelet/huh"

// RegionOption represents a DigitalOcean datacenter region.
type RegionOption struct {
	Value       string
	Label       string
	Description string
}

// ImageOption represents a droplet base image.
type ImageOption struct {
	Value       string
	Label       string
	Description string
}

// SizeOption represents a droplet size slug.
type SizeOption struct {
	Value       string
	Label       string
	Description string
}

// Regions contains the DigitalOcean regions that offer both Droplets
// and Spaces (the stack needs Spaces for storage backups).
var Regions = []RegionOption{
	{Value: "ams3", Label: "ams3", Description: "Amsterdam, Netherlands"},
	{Value: "fra1", Label: "fra1", Description: "Frankfurt, Germany"},
	{Value: "nyc3", Label: "nyc3", Description: "New York, USA"},
	{Value: "sfo3", Label: "sfo3", Description: "San Francisco, USA"},
	{Value: "sgp1", Label: "sgp1", Description: "Singapore"},
	{Value: "syd1", Label: "syd1", Description: "Sydney, Australia"},
}

// Images contains droplet base images the packer template supports.
var Images = []ImageOption{
	{Value: "ubuntu-22-04-x64", Label: "ubuntu-22-04-x64", Description: "Ubuntu 22.04 LTS (recommended)"},
	{Value: "ubuntu-24-04-x64", Label: "ubuntu-24-04-x64", Description: "Ubuntu 24.04 LTS"},
	{Value: "debian-12-x64", Label: "debian-12-x64", Description: "Debian 12"},
}

// Sizes contains droplet sizes suitable for a self-hosted Supabase stack.
var Sizes = []SizeOption{
	{Value: "s-1vcpu-2gb", Label: "s-1vcpu-2gb", Description: "1 vCPU, 2GB RAM (testing only)"},
	{Value: "s-2vcpu-4gb", Label: "s-2vcpu-4gb", Description: "2 vCPU, 4GB RAM (recommended)"},
	{Value: "s-4vcpu-8gb", Label: "s-4vcpu-8gb", Description: "4 vCPU, 8GB RAM"},
	{Value: "s-8vcpu-16gb", Label: "s-8vcpu-16gb", Description: "8 vCPU, 16GB RAM"},
	{Value: "c-4", Label: "c-4", Description: "4 dedicated vCPU, 8GB RAM"},
}

// RegionsToOptions converts the region table to huh select options.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Regions))
	for i, r := range Regions {
		opts[i] = huh.NewOption(r.Label+" - "+r.Description, r.Value)
	}
	return opts
}

// ImagesToOptions converts the image table to huh select options.
func ImagesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Images))
	for i, img := range Images {
		opts[i] = huh.NewOption(img.Label+" - "+img.Description, img.Value)
	}
	return opts
}

// SizesToOptions converts the size table to huh select options.
func SizesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Sizes))
	for i, s := range Sizes {
		opts[i] = huh.NewOption(s.Label+" - "+s.Description, s.Value)
	}
	return opts
}
