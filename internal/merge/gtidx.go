package merge

// GtIdx computes the canonical genotype index for an unordered allele
// pair (j, k). Callers may pass j and k in either order; the smaller is
// treated as j internally to match the gt_idx(j,k) = k*(k+1)/2 + j
// encoding, defined for j <= k.
func GtIdx(j, k int) int {
	if j > k {
		j, k = k, j
	}
	return k*(k+1)/2 + j
}

// NumGenotypes returns G(n) = n*(n+1)/2, the number of unordered pairs
// over n alleles (including REF), i.e. the length of a genotype-indexed
// field for n total alleles.
func NumGenotypes(n int) int {
	return n * (n + 1) / 2
}
