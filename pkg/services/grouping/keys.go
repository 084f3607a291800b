package grouping

// Source identifiers link some hierarchy levels by slices of codes instead of
// explicit parent references. These helpers keep the slicing in one place.

// provinceKeyOf returns the last two characters of a province PSGC code, which is
// what cities store as their province reference.
func provinceKeyOf(psgc string) string {
	if len(psgc) <= 2 {
		return psgc
	}
	return psgc[len(psgc)-2:]
}

// cityKeyOf returns the first six characters of a barangay PSGC code, i.e. the
// PSGC code of the city or municipality containing it.
func cityKeyOf(psgc string) string {
	if len(psgc) <= 6 {
		return psgc
	}
	return psgc[:6]
}

// agencyKeyOf returns characters 3 to 5 of an operating unit UACS code, i.e. the
// code of its agency.
func agencyKeyOf(uacs string) string {
	if len(uacs) <= 2 {
		return ""
	}
	end := 5
	if len(uacs) < end {
		end = len(uacs)
	}
	return uacs[2:end]
}
