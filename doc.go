/*
 * doc.go, part of ElliptiCBn.
 *
 * Copyright 2024 The ElliptiCBn Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package ellipticbn identifies cucurbituril-type macrocycles in 3D atomic
coordinates and measures how elliptical each one is.


	**Pipeline**

    Reads XYZ files (plain or gzipped).

    Partitions the atoms into molecules with a distance criterium.

    Finds the central carbon cycle of each candidate host molecule,
	excluding carbons too close to an oxygen and keeping only
	carbon-carbon bonds of plausible length.

    Rejects candidate cycles that are too elongated to be a macrocycle,
	using the aspect ratio of the principal components of the cycle
	geometry.

    For each accepted cycle, reports the ellipticity (1 - sigma2/sigma1,
	where sigma1 >= sigma2 are the in-plane principal spreads) together
	with the principal axes, anchored at the cycle centroid.

Molecules without a valid cycle, and cycles rejected by the shape filter,
are ordinary outcomes, not errors; callers can tell them apart.

The report and plot subpackages serialize the per-cycle results to tabular
files and render them. The cmd/ellipticbn command drives the whole thing,
including batch processing of several XYZ files into a merged summary.
*/
package ellipticbn
