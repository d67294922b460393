// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rewrite

import "github.com/gogpu/glslx/pkg/glsl/ast"

// variantTag names the concrete Go type of an AST node so rules can be
// grouped and looked up without reflection.
func variantTag(node ast.Node) string {
	switch node.(type) {
	case *ast.VariableDecl:
		return "VariableDecl"
	case *ast.ParamDecl:
		return "ParamDecl"
	case *ast.StructDecl:
		return "StructDecl"
	case *ast.InterfaceBlockDecl:
		return "InterfaceBlockDecl"
	case *ast.FunctionDecl:
		return "FunctionDecl"
	case *ast.PrecisionDecl:
		return "PrecisionDecl"
	case *ast.ExtensionDecl:
		return "ExtensionDecl"
	case *ast.IdentExpr:
		return "IdentExpr"
	case *ast.CallExpr:
		return "CallExpr"
	case *ast.MemberExpr:
		return "MemberExpr"
	case *ast.SubscriptExpr:
		return "SubscriptExpr"
	case *ast.BinaryExpr:
		return "BinaryExpr"
	case *ast.UnaryExpr:
		return "UnaryExpr"
	case *ast.TernaryExpr:
		return "TernaryExpr"
	case *ast.LiteralExpr:
		return "LiteralExpr"
	case *ast.InitListExpr:
		return "InitListExpr"
	case *ast.SwitchStmt:
		return "SwitchStmt"
	case *ast.ReturnStmt:
		return "ReturnStmt"
	case *ast.IfStmt:
		return "IfStmt"
	case *ast.ForStmt:
		return "ForStmt"
	case *ast.WhileStmt:
		return "WhileStmt"
	case *ast.DoWhileStmt:
		return "DoWhileStmt"
	case *ast.BlockStmt:
		return "BlockStmt"
	case *ast.DeclStmt:
		return "DeclStmt"
	case *ast.ExprStmt:
		return "ExprStmt"
	default:
		return "Unknown"
	}
}
