// Package mesh converts a finished cave grid into a polygon mesh with marching
// squares.
//
// Every grid tile becomes a ControlNode; each 2x2 block of control nodes is a
// Square whose 4-bit configuration selects one of sixteen polygons. Polygons
// are triangulated as fans and vertices are shared between neighbouring
// squares, so each physical position maps to exactly one vertex index.
//
// After triangulation the mesher walks the edges that belong to a single
// triangle, away from the outer rim of the grid, and chains them into closed
// outline loops. Outlines feed wall
// extrusion (ExtrudeWalls) for 3D meshes and edge colliders (EdgeColliders)
// for 2D meshes.
package mesh
