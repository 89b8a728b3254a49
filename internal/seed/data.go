package seed

import "github.com/olimpo/referrals/internal/domain"

var agents = []domain.Agent{
	{
		ID:     "agent-001",
		Name:   "Diego Mendoza Flores",
		Email:  "diego.mendoza@olimpo.mx",
		Phone:  "+52 55 1234 5678",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(500000),
		},
		CreatedAt: at("2025-10-15T10:00:00Z"),
	},
	{
		ID:     "agent-002",
		Name:   "Mariana Torres Guzmán",
		Email:  "mariana.torres@olimpo.mx",
		Phone:  "+52 55 2345 6789",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(350000),
		},
		CreatedAt: at("2025-10-18T14:30:00Z"),
	},
	{
		ID:     "agent-003",
		Name:   "José Luis Ramírez Herrera",
		Email:  "joseluis.ramirez@olimpo.mx",
		Phone:  "+52 33 3456 7890",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         false,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(150000),
		},
		CreatedAt: at("2025-10-20T09:15:00Z"),
	},
	{
		ID:     "agent-004",
		Name:   "Ana Gabriela Salazar Peña",
		Email:  "ana.salazar@olimpo.mx",
		Phone:  "+52 81 4567 8901",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(400000),
		},
		CreatedAt: at("2025-10-22T11:00:00Z"),
	},
	{
		ID:     "agent-005",
		Name:   "Fernando Castillo Ortega",
		Email:  "fernando.castillo@olimpo.mx",
		Phone:  "+52 55 5678 9012",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         false,
			CanReferStandard:    true,
			CanGrantCredit:      false,
			MaxCreditLineAmount: amount(0),
		},
		CreatedAt: at("2025-11-01T08:45:00Z"),
	},
	{
		ID:     "agent-006",
		Name:   "Lucía Hernández Morales",
		Email:  "lucia.hernandez@olimpo.mx",
		Phone:  "+52 33 6789 0123",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(250000),
		},
		CreatedAt: at("2025-11-05T16:20:00Z"),
	},
	{
		ID:     "agent-007",
		Name:   "Diego Vargas Navarro",
		Email:  "diego.vargas@olimpo.mx",
		Phone:  "+52 81 7890 1234",
		Status: domain.AgentStatusInactive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         false,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(100000),
		},
		CreatedAt: at("2025-11-08T13:00:00Z"),
	},
	{
		ID:     "agent-008",
		Name:   "Sofía Delgado Ríos",
		Email:  "sofia.delgado@olimpo.mx",
		Phone:  "+52 55 8901 2345",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         false,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(120000),
		},
		CreatedAt: at("2025-11-10T10:30:00Z"),
	},
	{
		ID:     "agent-009",
		Name:   "Carlos Alberto Mejía Luna",
		Email:  "carlos.mejia@olimpo.mx",
		Phone:  "+52 33 9012 3456",
		Status: domain.AgentStatusInactive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      false,
			MaxCreditLineAmount: amount(0),
		},
		CreatedAt: at("2025-11-12T15:45:00Z"),
	},
	{
		ID:     "agent-010",
		Name:   "Valentina Rojas Espinoza",
		Email:  "valentina.rojas@olimpo.mx",
		Phone:  "+52 81 0123 4567",
		Status: domain.AgentStatusActive,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         true,
			CanReferStandard:    true,
			CanGrantCredit:      true,
			MaxCreditLineAmount: amount(300000),
		},
		CreatedAt: at("2025-11-15T12:00:00Z"),
	},
}

var prospects = []prospectSeed{
	// agent-001
	{id: "prospect-001", name: "Alejandro Vega Soto", phone: "+52 55 1111 0001", email: "alejandro.vega@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 300000, program: domain.ProgramEmpresaEB1, agentID: "agent-001", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-05", createdAt: "2025-11-05T10:20:00Z"},
	{id: "prospect-002", name: "Gabriela Muñoz Ibarra", phone: "+52 55 1111 0002", email: "gabriela.munoz@hotmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 250000, program: domain.ProgramEmpresaEB1, agentID: "agent-001", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-001"), status: domain.ReferralActive, historyBase: "2025-11-12", createdAt: "2025-11-12T14:35:00Z"},
	{id: "prospect-003", name: "Roberto Pacheco Aguilar", phone: "+52 55 1111 0003", email: "roberto.pacheco@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 80000, program: domain.ProgramEmpresaEB2, agentID: "agent-001", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-20", createdAt: "2025-11-20T09:10:00Z"},
	{id: "prospect-004", name: "Isabel Contreras Duarte", phone: "+52 55 1111 0004", email: "isabel.contreras@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-001", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralRegistered, historyBase: "2025-12-01", createdAt: "2025-12-01T11:45:00Z"},
	{id: "prospect-005", name: "Miguel Ángel Fuentes Reyes", phone: "+52 55 1111 0005", email: "miguel.fuentes@yahoo.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 500000, program: domain.ProgramEmpresaEB1, agentID: "agent-001", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-10", createdAt: "2025-12-10T16:00:00Z"},
	{id: "prospect-006", name: "Patricia Lozano Cervantes", phone: "+52 55 1111 0006", email: "patricia.lozano@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 50000, program: domain.ProgramEmpresaEB2, agentID: "agent-001", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-002"), status: domain.ReferralInvited, historyBase: "2026-01-15", createdAt: "2026-01-15T08:30:00Z"},
	// agent-002
	{id: "prospect-007", name: "Héctor Jiménez Orozco", phone: "+52 33 2222 0001", email: "hector.jimenez@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 350000, program: domain.ProgramEmpresaEB1, agentID: "agent-002", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-08", createdAt: "2025-11-08T13:20:00Z"},
	{id: "prospect-008", name: "Claudia Medina Trejo", phone: "+52 33 2222 0002", email: "claudia.medina@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 100000, program: domain.ProgramEmpresaEB2, agentID: "agent-002", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-18", createdAt: "2025-11-18T10:05:00Z"},
	{id: "prospect-009", name: "Enrique Domínguez Ponce", phone: "+52 33 2222 0003", email: "enrique.dominguez@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 200000, program: domain.ProgramEmpresaEB2, agentID: "agent-002", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-003"), status: domain.ReferralActive, historyBase: "2025-12-02", createdAt: "2025-12-02T15:40:00Z"},
	{id: "prospect-010", name: "Teresa Esquivel Montes", phone: "+52 33 2222 0004", email: "teresa.esquivel@hotmail.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-002", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralInvited, historyBase: "2026-01-20", createdAt: "2026-01-20T09:55:00Z"},
	{id: "prospect-011", name: "Raúl Sandoval Bautista", phone: "+52 33 2222 0005", email: "raul.sandoval@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 75000, program: domain.ProgramEmpresaEB2, agentID: "agent-002", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralRegistered, historyBase: "2026-02-01", createdAt: "2026-02-01T12:10:00Z"},
	// agent-003
	{id: "prospect-012", name: "Laura Beatriz Campos Ávila", phone: "+52 33 3333 0001", email: "laura.campos@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 120000, program: domain.ProgramEmpresaEB2, agentID: "agent-003", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-10", createdAt: "2025-11-10T08:00:00Z"},
	{id: "prospect-013", name: "Óscar Guillermo Nava Solís", phone: "+52 33 3333 0002", email: "oscar.nava@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 60000, program: domain.ProgramEmpresaEB2, agentID: "agent-003", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-05", createdAt: "2025-12-05T14:25:00Z"},
	{id: "prospect-014", name: "Mónica Estrada Villalobos", phone: "+52 33 3333 0003", email: "monica.estrada@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 90000, program: domain.ProgramEmpresaEB2, agentID: "agent-003", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-004"), status: domain.ReferralRegistered, historyBase: "2026-01-08", createdAt: "2026-01-08T11:30:00Z"},
	{id: "prospect-015", name: "Sergio Ramos Gutiérrez", phone: "+52 33 3333 0004", email: "sergio.ramos@yahoo.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-003", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralInvited, historyBase: "2026-02-05", createdAt: "2026-02-05T17:00:00Z"},
	// agent-004
	{id: "prospect-016", name: "Adrián Mora Becerra", phone: "+52 81 4444 0001", email: "adrian.mora@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 400000, program: domain.ProgramEmpresaEB1, agentID: "agent-004", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-07", createdAt: "2025-11-07T09:45:00Z"},
	{id: "prospect-017", name: "Carmen Leticia Zavala Díaz", phone: "+52 81 4444 0002", email: "carmen.zavala@hotmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 280000, program: domain.ProgramEmpresaEB1, agentID: "agent-004", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-25", createdAt: "2025-11-25T15:10:00Z"},
	{id: "prospect-018", name: "Jorge Alfredo Peña Rosales", phone: "+52 81 4444 0003", email: "jorge.pena@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 150000, program: domain.ProgramEmpresaEB2, agentID: "agent-004", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-005"), status: domain.ReferralActive, historyBase: "2025-12-08", createdAt: "2025-12-08T10:55:00Z"},
	{id: "prospect-019", name: "Verónica Sánchez Paredes", phone: "+52 81 4444 0004", email: "veronica.sanchez@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 70000, program: domain.ProgramEmpresaEB2, agentID: "agent-004", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralRegistered, historyBase: "2026-01-12", createdAt: "2026-01-12T08:20:00Z"},
	{id: "prospect-020", name: "Arturo Cisneros Valdez", phone: "+52 81 4444 0005", email: "arturo.cisneros@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 350000, program: domain.ProgramEmpresaEB1, agentID: "agent-004", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2026-01-28", createdAt: "2026-01-28T13:40:00Z"},
	// agent-005
	{id: "prospect-021", name: "Rosa María León Castro", phone: "+52 55 5555 0001", email: "rosa.leon@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-005", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-22", createdAt: "2025-11-22T10:00:00Z"},
	{id: "prospect-022", name: "Eduardo Guerrero Mendoza", phone: "+52 55 5555 0002", email: "eduardo.guerrero@hotmail.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-005", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralChurn, historyBase: "2025-12-15", createdAt: "2025-12-15T14:50:00Z"},
	{id: "prospect-023", name: "Diana Kristell Cruz Martínez", phone: "+52 55 5555 0003", email: "diana.cruz@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: false, creditLine: 0, program: domain.ProgramEmpresaEB2, agentID: "agent-005", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-006"), status: domain.ReferralInvited, historyBase: "2026-02-10", createdAt: "2026-02-10T09:15:00Z"},
	// agent-006
	{id: "prospect-024", name: "Andrés Felipe Ruiz Beltrán", phone: "+52 33 6666 0001", email: "andres.ruiz@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 220000, program: domain.ProgramEmpresaEB1, agentID: "agent-006", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-14", createdAt: "2025-11-14T11:30:00Z"},
	{id: "prospect-025", name: "Paulina Acosta Rangel", phone: "+52 33 6666 0002", email: "paulina.acosta@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 100000, program: domain.ProgramEmpresaEB2, agentID: "agent-006", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-03", createdAt: "2025-12-03T09:40:00Z"},
	{id: "prospect-026", name: "Francisco Javier Bravo Núñez", phone: "+52 33 6666 0003", email: "francisco.bravo@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 180000, program: domain.ProgramEmpresaEB2, agentID: "agent-006", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-007"), status: domain.ReferralActive, historyBase: "2025-12-18", createdAt: "2025-12-18T16:15:00Z"},
	{id: "prospect-027", name: "Natalia Cordero Villanueva", phone: "+52 33 6666 0004", email: "natalia.cordero@yahoo.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 65000, program: domain.ProgramEmpresaEB2, agentID: "agent-006", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralInvited, historyBase: "2026-02-08", createdAt: "2026-02-08T12:00:00Z"},
	// agent-007
	{id: "prospect-028", name: "Daniela Olvera Tapia", phone: "+52 81 7777 0001", email: "daniela.olvera@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 80000, program: domain.ProgramEmpresaEB2, agentID: "agent-007", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-15", createdAt: "2025-11-15T10:10:00Z"},
	{id: "prospect-029", name: "Gustavo Adolfo Barrera Leal", phone: "+52 81 7777 0002", email: "gustavo.barrera@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 45000, program: domain.ProgramEmpresaEB2, agentID: "agent-007", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-12", createdAt: "2025-12-12T14:20:00Z"},
	// agent-008
	{id: "prospect-030", name: "Rafael Ignacio Ayala Coronado", phone: "+52 55 8888 0001", email: "rafael.ayala@gmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 110000, program: domain.ProgramEmpresaEB2, agentID: "agent-008", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-01", createdAt: "2025-12-01T13:00:00Z"},
	{id: "prospect-031", name: "Alejandra Galván Ochoa", phone: "+52 55 8888 0002", email: "alejandra.galvan@hotmail.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 55000, program: domain.ProgramEmpresaEB2, agentID: "agent-008", method: domain.ReferralMethodInviteLink, inviteLinkID: strPtr("link-008"), status: domain.ReferralRegistered, historyBase: "2026-01-18", createdAt: "2026-01-18T10:50:00Z"},
	// agent-009
	{id: "prospect-032", name: "Irma Susana Maldonado Quiroz", phone: "+52 33 9999 0001", email: "irma.maldonado@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 200000, program: domain.ProgramEmpresaEB1, agentID: "agent-009", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralChurn, historyBase: "2025-11-20", createdAt: "2025-11-20T15:30:00Z"},
	// agent-010
	{id: "prospect-033", name: "Germán Alonso Palacios Rivera", phone: "+52 81 1010 0001", email: "german.palacios@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 300000, program: domain.ProgramEmpresaEB1, agentID: "agent-010", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-11-18", createdAt: "2025-11-18T09:00:00Z"},
	{id: "prospect-034", name: "Erika Soledad Figueroa Rivas", phone: "+52 81 1010 0002", email: "erika.figueroa@outlook.com", clientType: domain.ClientTypeStandard, creditAvailable: true, creditLine: 140000, program: domain.ProgramEmpresaEB2, agentID: "agent-010", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralActive, historyBase: "2025-12-06", createdAt: "2025-12-06T11:20:00Z"},
	{id: "prospect-035", name: "Juan Pablo Velasco Arellano", phone: "+52 81 1010 0003", email: "juanpablo.velasco@gmail.com", clientType: domain.ClientTypeVIP, creditAvailable: true, creditLine: 250000, program: domain.ProgramEmpresaEB1, agentID: "agent-010", method: domain.ReferralMethodDirect, inviteLinkID: nil, status: domain.ReferralRegistered, historyBase: "2026-01-25", createdAt: "2026-01-25T14:00:00Z"},
}

var transactions = []domain.Transaction{
	// prospect-001
	{ID: "txn-001", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(80000), Description: "Fondeo inicial - transferencia SPEI", CreatedAt: at("2025-11-14T10:30:00Z")},
	{ID: "txn-002", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(4500), Description: "Compra en Liverpool Centro", CreatedAt: at("2025-11-18T14:22:00Z")},
	{ID: "txn-003", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(12800), Description: "Compra en Palacio de Hierro Polanco", CreatedAt: at("2025-12-02T11:15:00Z")},
	{ID: "txn-004", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(50000), Description: "Segundo fondeo - transferencia SPEI", CreatedAt: at("2025-12-20T09:00:00Z")},
	{ID: "txn-005", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(8900), Description: "Compra en Amazon México", CreatedAt: at("2026-01-05T16:40:00Z")},
	{ID: "txn-006", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(2350), Description: "Compra en Costco Satélite", CreatedAt: at("2026-01-22T13:10:00Z")},
	{ID: "txn-007", ProspectID: "prospect-001", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(15000), Description: "Compra en Best Buy Perisur", CreatedAt: at("2026-02-08T10:55:00Z")},
	// prospect-002
	{ID: "txn-008", ProspectID: "prospect-002", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(100000), Description: "Fondeo inicial - transferencia bancaria", CreatedAt: at("2025-11-22T11:00:00Z")},
	{ID: "txn-009", ProspectID: "prospect-002", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(45000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2025-12-18T14:30:00Z")},
	// prospect-003
	{ID: "txn-010", ProspectID: "prospect-003", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(30000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-28T09:45:00Z")},
	{ID: "txn-011", ProspectID: "prospect-003", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(3200), Description: "Compra en Soriana Híper", CreatedAt: at("2025-12-05T12:30:00Z")},
	{ID: "txn-012", ProspectID: "prospect-003", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(7600), Description: "Compra en Home Depot", CreatedAt: at("2025-12-22T15:20:00Z")},
	{ID: "txn-013", ProspectID: "prospect-003", AgentID: "agent-001", Type: domain.TransactionCardPurchase, Amount: amount(1450), Description: "Compra en Farmacia Guadalajara", CreatedAt: at("2026-01-10T10:05:00Z")},
	{ID: "txn-014", ProspectID: "prospect-003", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(20000), Description: "Fondeo adicional - SPEI", CreatedAt: at("2026-02-03T08:30:00Z")},
	// prospect-005
	{ID: "txn-015", ProspectID: "prospect-005", AgentID: "agent-001", Type: domain.TransactionFunding, Amount: amount(75000), Description: "Fondeo inicial - transferencia SPEI", CreatedAt: at("2025-12-19T10:00:00Z")},
	// prospect-007
	{ID: "txn-016", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionFunding, Amount: amount(90000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-16T09:30:00Z")},
	{ID: "txn-017", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(6700), Description: "Compra en Sears Guadalajara", CreatedAt: at("2025-11-25T11:45:00Z")},
	{ID: "txn-018", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(11200), Description: "Compra en Sanborns", CreatedAt: at("2025-12-10T14:00:00Z")},
	{ID: "txn-019", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionFunding, Amount: amount(60000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2026-01-02T10:15:00Z")},
	{ID: "txn-020", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(3400), Description: "Compra en Chedraui", CreatedAt: at("2026-01-15T12:30:00Z")},
	{ID: "txn-021", ProspectID: "prospect-007", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(9500), Description: "Compra en Mercado Libre", CreatedAt: at("2026-02-05T16:20:00Z")},
	// prospect-008
	{ID: "txn-022", ProspectID: "prospect-008", AgentID: "agent-002", Type: domain.TransactionFunding, Amount: amount(40000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-28T13:20:00Z")},
	{ID: "txn-023", ProspectID: "prospect-008", AgentID: "agent-002", Type: domain.TransactionFunding, Amount: amount(25000), Description: "Segundo fondeo - transferencia", CreatedAt: at("2026-01-08T09:00:00Z")},
	// prospect-009
	{ID: "txn-024", ProspectID: "prospect-009", AgentID: "agent-002", Type: domain.TransactionFunding, Amount: amount(55000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-12T10:30:00Z")},
	{ID: "txn-025", ProspectID: "prospect-009", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(4800), Description: "Compra en Suburbia", CreatedAt: at("2025-12-20T15:45:00Z")},
	{ID: "txn-026", ProspectID: "prospect-009", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(14200), Description: "Compra en Liverpool Guadalajara", CreatedAt: at("2026-01-18T11:00:00Z")},
	{ID: "txn-027", ProspectID: "prospect-009", AgentID: "agent-002", Type: domain.TransactionCardPurchase, Amount: amount(2100), Description: "Compra en Oxxo Pay", CreatedAt: at("2026-02-12T08:40:00Z")},
	// prospect-012
	{ID: "txn-028", ProspectID: "prospect-012", AgentID: "agent-003", Type: domain.TransactionFunding, Amount: amount(35000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-20T09:15:00Z")},
	{ID: "txn-029", ProspectID: "prospect-012", AgentID: "agent-003", Type: domain.TransactionCardPurchase, Amount: amount(5600), Description: "Compra en Elektra", CreatedAt: at("2025-12-01T12:00:00Z")},
	{ID: "txn-030", ProspectID: "prospect-012", AgentID: "agent-003", Type: domain.TransactionCardPurchase, Amount: amount(8300), Description: "Compra en Sam's Club", CreatedAt: at("2025-12-18T10:30:00Z")},
	{ID: "txn-031", ProspectID: "prospect-012", AgentID: "agent-003", Type: domain.TransactionFunding, Amount: amount(25000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2026-01-14T14:00:00Z")},
	{ID: "txn-032", ProspectID: "prospect-012", AgentID: "agent-003", Type: domain.TransactionCardPurchase, Amount: amount(2900), Description: "Compra en Walmart", CreatedAt: at("2026-02-02T09:50:00Z")},
	// prospect-013
	{ID: "txn-033", ProspectID: "prospect-013", AgentID: "agent-003", Type: domain.TransactionFunding, Amount: amount(20000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-14T11:30:00Z")},
	{ID: "txn-034", ProspectID: "prospect-013", AgentID: "agent-003", Type: domain.TransactionFunding, Amount: amount(15000), Description: "Segundo fondeo - transferencia", CreatedAt: at("2026-01-20T10:00:00Z")},
	// prospect-016
	{ID: "txn-035", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(100000), Description: "Fondeo inicial - transferencia SPEI", CreatedAt: at("2025-11-15T09:00:00Z")},
	{ID: "txn-036", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(8500), Description: "Compra en Palacio de Hierro Monterrey", CreatedAt: at("2025-11-22T14:30:00Z")},
	{ID: "txn-037", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(12000), Description: "Compra en Apple Store", CreatedAt: at("2025-12-05T11:45:00Z")},
	{ID: "txn-038", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(70000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2025-12-28T10:00:00Z")},
	{ID: "txn-039", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(5200), Description: "Compra en Amazon México", CreatedAt: at("2026-01-10T13:20:00Z")},
	{ID: "txn-040", ProspectID: "prospect-016", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(9800), Description: "Compra en Innova Sport", CreatedAt: at("2026-02-01T15:00:00Z")},
	// prospect-017
	{ID: "txn-041", ProspectID: "prospect-017", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(85000), Description: "Fondeo inicial - transferencia bancaria", CreatedAt: at("2025-12-04T09:30:00Z")},
	{ID: "txn-042", ProspectID: "prospect-017", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(35000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2026-01-22T11:15:00Z")},
	// prospect-018
	{ID: "txn-043", ProspectID: "prospect-018", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(45000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-16T10:45:00Z")},
	{ID: "txn-044", ProspectID: "prospect-018", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(6300), Description: "Compra en El Puerto de Liverpool", CreatedAt: at("2025-12-28T14:10:00Z")},
	{ID: "txn-045", ProspectID: "prospect-018", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(3800), Description: "Compra en HEB", CreatedAt: at("2026-01-15T12:00:00Z")},
	{ID: "txn-046", ProspectID: "prospect-018", AgentID: "agent-004", Type: domain.TransactionCardPurchase, Amount: amount(10500), Description: "Compra en Zara", CreatedAt: at("2026-02-06T16:30:00Z")},
	// prospect-020
	{ID: "txn-047", ProspectID: "prospect-020", AgentID: "agent-004", Type: domain.TransactionFunding, Amount: amount(60000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2026-02-05T09:00:00Z")},
	// prospect-021
	{ID: "txn-048", ProspectID: "prospect-021", AgentID: "agent-005", Type: domain.TransactionFunding, Amount: amount(15000), Description: "Fondeo inicial - depósito", CreatedAt: at("2025-12-02T10:00:00Z")},
	{ID: "txn-049", ProspectID: "prospect-021", AgentID: "agent-005", Type: domain.TransactionFunding, Amount: amount(10000), Description: "Segundo fondeo - SPEI", CreatedAt: at("2026-01-05T14:00:00Z")},
	// prospect-024
	{ID: "txn-050", ProspectID: "prospect-024", AgentID: "agent-006", Type: domain.TransactionFunding, Amount: amount(65000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-22T09:30:00Z")},
	{ID: "txn-051", ProspectID: "prospect-024", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(7400), Description: "Compra en Sears", CreatedAt: at("2025-12-03T13:45:00Z")},
	{ID: "txn-052", ProspectID: "prospect-024", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(4100), Description: "Compra en Office Depot", CreatedAt: at("2025-12-20T11:30:00Z")},
	{ID: "txn-053", ProspectID: "prospect-024", AgentID: "agent-006", Type: domain.TransactionFunding, Amount: amount(40000), Description: "Segundo fondeo - transferencia", CreatedAt: at("2026-01-10T10:00:00Z")},
	{ID: "txn-054", ProspectID: "prospect-024", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(13500), Description: "Compra en Nike Store", CreatedAt: at("2026-01-28T15:20:00Z")},
	// prospect-025
	{ID: "txn-055", ProspectID: "prospect-025", AgentID: "agent-006", Type: domain.TransactionFunding, Amount: amount(50000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-12T11:00:00Z")},
	// prospect-026
	{ID: "txn-056", ProspectID: "prospect-026", AgentID: "agent-006", Type: domain.TransactionFunding, Amount: amount(55000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-26T09:00:00Z")},
	{ID: "txn-057", ProspectID: "prospect-026", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(9200), Description: "Compra en Coppel", CreatedAt: at("2026-01-08T14:30:00Z")},
	{ID: "txn-058", ProspectID: "prospect-026", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(5800), Description: "Compra en Sanborns", CreatedAt: at("2026-01-25T10:45:00Z")},
	{ID: "txn-059", ProspectID: "prospect-026", AgentID: "agent-006", Type: domain.TransactionCardPurchase, Amount: amount(3600), Description: "Compra en Starbucks (corporativo)", CreatedAt: at("2026-02-10T08:20:00Z")},
	// prospect-028
	{ID: "txn-060", ProspectID: "prospect-028", AgentID: "agent-007", Type: domain.TransactionFunding, Amount: amount(25000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-24T10:00:00Z")},
	{ID: "txn-061", ProspectID: "prospect-028", AgentID: "agent-007", Type: domain.TransactionCardPurchase, Amount: amount(3100), Description: "Compra en C&A", CreatedAt: at("2025-12-08T12:15:00Z")},
	{ID: "txn-062", ProspectID: "prospect-028", AgentID: "agent-007", Type: domain.TransactionCardPurchase, Amount: amount(4700), Description: "Compra en Linio", CreatedAt: at("2026-01-12T15:50:00Z")},
	// prospect-029
	{ID: "txn-063", ProspectID: "prospect-029", AgentID: "agent-007", Type: domain.TransactionFunding, Amount: amount(18000), Description: "Fondeo inicial - depósito", CreatedAt: at("2025-12-22T09:00:00Z")},
	// prospect-030
	{ID: "txn-064", ProspectID: "prospect-030", AgentID: "agent-008", Type: domain.TransactionFunding, Amount: amount(40000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-10T11:00:00Z")},
	{ID: "txn-065", ProspectID: "prospect-030", AgentID: "agent-008", Type: domain.TransactionFunding, Amount: amount(30000), Description: "Segundo fondeo - transferencia", CreatedAt: at("2026-01-20T09:30:00Z")},
	// prospect-032
	{ID: "txn-066", ProspectID: "prospect-032", AgentID: "agent-009", Type: domain.TransactionFunding, Amount: amount(95000), Description: "Fondeo inicial - transferencia bancaria", CreatedAt: at("2025-11-30T10:15:00Z")},
	// prospect-033
	{ID: "txn-067", ProspectID: "prospect-033", AgentID: "agent-010", Type: domain.TransactionFunding, Amount: amount(80000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-11-26T09:00:00Z")},
	{ID: "txn-068", ProspectID: "prospect-033", AgentID: "agent-010", Type: domain.TransactionCardPurchase, Amount: amount(11500), Description: "Compra en Palacio de Hierro", CreatedAt: at("2025-12-10T14:00:00Z")},
	{ID: "txn-069", ProspectID: "prospect-033", AgentID: "agent-010", Type: domain.TransactionCardPurchase, Amount: amount(6200), Description: "Compra en Amazon México", CreatedAt: at("2026-01-05T16:30:00Z")},
	// prospect-034
	{ID: "txn-070", ProspectID: "prospect-034", AgentID: "agent-010", Type: domain.TransactionFunding, Amount: amount(45000), Description: "Fondeo inicial - SPEI", CreatedAt: at("2025-12-14T10:00:00Z")},
}

var inviteLinks = []domain.InviteLink{
	{
		ID:               "link-001",
		AgentID:          "agent-001",
		Code:             "OLIMPO-RM-GOLD1",
		URL:              "https://olimpo.mx/invite/OLIMPO-RM-GOLD1",
		Program:          domain.ProgramEmpresaEB1,
		ClientType:       domain.ClientTypeVIP,
		CreditAvailable:  true,
		CreditLineAmount: amount(250000),
		UsedByProspectID: strPtr("prospect-002"),
		UsedAt:           timePtr("2025-11-12T14:35:00Z"),
		CreatedAt:        at("2025-11-10T09:00:00Z"),
		ExpiresAt:        at("2025-12-10T09:00:00Z"),
	},
	{
		ID:               "link-002",
		AgentID:          "agent-001",
		Code:             "OLIMPO-RM-SLV1",
		URL:              "https://olimpo.mx/invite/OLIMPO-RM-SLV1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeStandard,
		CreditAvailable:  true,
		CreditLineAmount: amount(50000),
		UsedByProspectID: strPtr("prospect-006"),
		UsedAt:           timePtr("2026-01-15T08:30:00Z"),
		CreatedAt:        at("2026-01-10T12:00:00Z"),
		ExpiresAt:        at("2026-02-10T12:00:00Z"),
	},
	{
		ID:               "link-003",
		AgentID:          "agent-002",
		Code:             "OLIMPO-MT-SLV1",
		URL:              "https://olimpo.mx/invite/OLIMPO-MT-SLV1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeVIP,
		CreditAvailable:  true,
		CreditLineAmount: amount(200000),
		UsedByProspectID: strPtr("prospect-009"),
		UsedAt:           timePtr("2025-12-02T15:40:00Z"),
		CreatedAt:        at("2025-11-28T10:00:00Z"),
		ExpiresAt:        at("2025-12-28T10:00:00Z"),
	},
	{
		ID:               "link-004",
		AgentID:          "agent-003",
		Code:             "OLIMPO-JR-SLV1",
		URL:              "https://olimpo.mx/invite/OLIMPO-JR-SLV1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeStandard,
		CreditAvailable:  true,
		CreditLineAmount: amount(90000),
		UsedByProspectID: strPtr("prospect-014"),
		UsedAt:           timePtr("2026-01-08T11:30:00Z"),
		CreatedAt:        at("2026-01-05T08:00:00Z"),
		ExpiresAt:        at("2026-02-05T08:00:00Z"),
	},
	{
		ID:               "link-005",
		AgentID:          "agent-004",
		Code:             "OLIMPO-AS-SLV1",
		URL:              "https://olimpo.mx/invite/OLIMPO-AS-SLV1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeStandard,
		CreditAvailable:  true,
		CreditLineAmount: amount(150000),
		UsedByProspectID: strPtr("prospect-018"),
		UsedAt:           timePtr("2025-12-08T10:55:00Z"),
		CreatedAt:        at("2025-12-01T09:00:00Z"),
		ExpiresAt:        at("2025-12-31T09:00:00Z"),
	},
	{
		ID:               "link-006",
		AgentID:          "agent-005",
		Code:             "OLIMPO-FC-STR1",
		URL:              "https://olimpo.mx/invite/OLIMPO-FC-STR1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeStandard,
		CreditAvailable:  false,
		CreditLineAmount: amount(0),
		UsedByProspectID: strPtr("prospect-023"),
		UsedAt:           timePtr("2026-02-10T09:15:00Z"),
		CreatedAt:        at("2026-02-01T10:00:00Z"),
		ExpiresAt:        at("2026-03-01T10:00:00Z"),
	},
	{
		ID:               "link-007",
		AgentID:          "agent-006",
		Code:             "OLIMPO-LH-SLV2",
		URL:              "https://olimpo.mx/invite/OLIMPO-LH-SLV2",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeVIP,
		CreditAvailable:  true,
		CreditLineAmount: amount(180000),
		UsedByProspectID: strPtr("prospect-026"),
		UsedAt:           timePtr("2025-12-18T16:15:00Z"),
		CreatedAt:        at("2025-12-15T09:00:00Z"),
		ExpiresAt:        at("2026-01-15T09:00:00Z"),
	},
	{
		ID:               "link-008",
		AgentID:          "agent-008",
		Code:             "OLIMPO-SD-STR1",
		URL:              "https://olimpo.mx/invite/OLIMPO-SD-STR1",
		Program:          domain.ProgramEmpresaEB2,
		ClientType:       domain.ClientTypeStandard,
		CreditAvailable:  true,
		CreditLineAmount: amount(55000),
		UsedByProspectID: strPtr("prospect-031"),
		UsedAt:           timePtr("2026-01-18T10:50:00Z"),
		CreatedAt:        at("2026-01-12T14:00:00Z"),
		ExpiresAt:        at("2026-02-12T14:00:00Z"),
	},
}
