package transform

// Embedded PROJJSON definitions for the fixed source/target pair. Passing
// these to the engine instead of the "EPSG:xxxx" registry codes lets a
// deployment run without any registry database installed (the parameters
// are the registry's published values for the two systems, inlined).

// CRSWGS84 is EPSG:4326 as PROJJSON. Axis order here is the registry's
// (lat, lon); the engine normalizes to (lon, lat) after construction.
const CRSWGS84 = `{
  "$schema": "https://proj.org/schemas/v0.4/projjson.schema.json",
  "type": "GeographicCRS",
  "name": "WGS 84",
  "datum": {
    "type": "GeodeticReferenceFrame",
    "name": "World Geodetic System 1984",
    "ellipsoid": {
      "name": "WGS 84",
      "semi_major_axis": 6378137,
      "inverse_flattening": 298.257223563
    }
  },
  "coordinate_system": {
    "subtype": "ellipsoidal",
    "axis": [
      {
        "name": "Geodetic latitude",
        "abbreviation": "Lat",
        "direction": "north",
        "unit": "degree"
      },
      {
        "name": "Geodetic longitude",
        "abbreviation": "Lon",
        "direction": "east",
        "unit": "degree"
      }
    ]
  },
  "id": {
    "authority": "EPSG",
    "code": 4326
  }
}`

// CRSSWEREF99TM is EPSG:3006 as PROJJSON: a transverse Mercator centred on
// 15 degrees east with scale factor 0.9996 and a 500 km false easting, on
// the SWEREF99 datum (GRS 1980 ellipsoid).
const CRSSWEREF99TM = `{
  "$schema": "https://proj.org/schemas/v0.4/projjson.schema.json",
  "type": "ProjectedCRS",
  "name": "SWEREF99 TM",
  "base_crs": {
    "type": "GeographicCRS",
    "name": "SWEREF99",
    "datum": {
      "type": "GeodeticReferenceFrame",
      "name": "SWEREF99",
      "ellipsoid": {
        "name": "GRS 1980",
        "semi_major_axis": 6378137,
        "inverse_flattening": 298.257222101
      }
    },
    "coordinate_system": {
      "subtype": "ellipsoidal",
      "axis": [
        {
          "name": "Geodetic latitude",
          "abbreviation": "Lat",
          "direction": "north",
          "unit": "degree"
        },
        {
          "name": "Geodetic longitude",
          "abbreviation": "Lon",
          "direction": "east",
          "unit": "degree"
        }
      ]
    },
    "id": {
      "authority": "EPSG",
      "code": 4619
    }
  },
  "conversion": {
    "name": "SWEREF99 TM",
    "method": {
      "name": "Transverse Mercator",
      "id": {
        "authority": "EPSG",
        "code": 9807
      }
    },
    "parameters": [
      {
        "name": "Latitude of natural origin",
        "value": 0,
        "unit": "degree",
        "id": { "authority": "EPSG", "code": 8801 }
      },
      {
        "name": "Longitude of natural origin",
        "value": 15,
        "unit": "degree",
        "id": { "authority": "EPSG", "code": 8802 }
      },
      {
        "name": "Scale factor at natural origin",
        "value": 0.9996,
        "unit": "unity",
        "id": { "authority": "EPSG", "code": 8805 }
      },
      {
        "name": "False easting",
        "value": 500000,
        "unit": "metre",
        "id": { "authority": "EPSG", "code": 8806 }
      },
      {
        "name": "False northing",
        "value": 0,
        "unit": "metre",
        "id": { "authority": "EPSG", "code": 8807 }
      }
    ]
  },
  "coordinate_system": {
    "subtype": "Cartesian",
    "axis": [
      {
        "name": "Northing",
        "abbreviation": "N",
        "direction": "north",
        "unit": "metre"
      },
      {
        "name": "Easting",
        "abbreviation": "E",
        "direction": "east",
        "unit": "metre"
      }
    ]
  },
  "id": {
    "authority": "EPSG",
    "code": 3006
  }
}`
