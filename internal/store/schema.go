package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name                 TEXT PRIMARY KEY,
    trials               INTEGER NOT NULL,
    correlation          REAL NOT NULL,
    food_min             REAL NOT NULL,
    food_mode            REAL NOT NULL,
    food_max             REAL NOT NULL,
    transport_lo         REAL NOT NULL,
    transport_width      REAL NOT NULL,
    lifestyle_mu         REAL NOT NULL,
    lifestyle_sigma      REAL NOT NULL,
    shock_prob           REAL NOT NULL,
    shock_cost           REAL NOT NULL,
    housing_mean         REAL NOT NULL,
    housing_stddev       REAL NOT NULL,
    budget               REAL NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);
`
