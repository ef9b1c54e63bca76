/*package geofield estimates continuous scalar fields over 2D regions from
sparse, irregularly placed point measurements, producing regular grids of
estimates for contour and heatmap rendering.

The packages below split the work: sample holds the scattered measurements,
grid builds the target mesh, interp implements the estimation methods and
the engine that dispatches between them, geostat supplies the
kriging-family estimators, config reads parameter files, and memo caches
results for callers.
*/
package geofield
